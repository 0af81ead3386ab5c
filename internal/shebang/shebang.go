package shebang

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// maxLineBytes caps the shebang read so a binary file with a huge first line
// can't blow memory. Real interpreter lines are tiny.
const maxLineBytes = 256

const envCommand = "/usr/bin/env"

// Resolve returns the command words that should interpret the script at
// path, read from its shebang line. It returns nil words and no error when
// the file has no usable shebang, the caller's default interpreter applies
// then. The only error cause is not being able to read the file.
func Resolve(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open script: %w", err)
	}
	defer f.Close()

	buf := make([]byte, maxLineBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("could not read script: %w", err)
	}

	line := string(buf[:n])
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	if !strings.HasPrefix(line, "#!") {
		return nil, nil
	}

	words, err := shellwords.Parse(strings.TrimSpace(line[2:]))
	if err != nil {
		// A misconfigured shebang falls back to the default interpreter.
		return nil, nil
	}

	// Drop /usr/bin/env, the interpreter is looked up in PATH anyway.
	if len(words) > 0 && words[0] == envCommand {
		words = words[1:]
	}
	if len(words) == 0 {
		return nil, nil
	}

	return words, nil
}

// SplitCommand splits an interpreter command into words with shell quoting
// rules ("python3 -u" -> ["python3", "-u"]).
func SplitCommand(cmd string) ([]string, error) {
	words, err := shellwords.Parse(cmd)
	if err != nil {
		return nil, fmt.Errorf("could not parse interpreter command %q: %w", cmd, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("interpreter command is empty")
	}

	return words, nil
}
