package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// RunSink executes a reminder-sink command with the given arguments string,
// split on whitespace. Use RunSinkArgs when an argument contains spaces that
// should be preserved.
func RunSink(ctx context.Context, env []string, binary, cmdArgs string, nolog bool) (stdout, stderr []byte, err error) {
	return RunSinkArgs(ctx, env, binary, strings.Fields(cmdArgs), nolog)
}

// RunSinkArgs executes a reminder-sink command with pre-split arguments and
// returns its captured stdout and stderr. The process inherits the test
// environment with env entries layered on top, duplicate keys resolve to the
// last one. With nolog the command's logger is disabled through the
// REMINDER_SINK_NO_LOG environment variable so stderr only carries real
// errors.
func RunSinkArgs(ctx context.Context, env []string, binary string, args []string, nolog bool) (stdout, stderr []byte, err error) {
	var outData, errData bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &outData
	cmd.Stderr = &errData

	cmdEnv := append(os.Environ(), env...)
	if nolog {
		cmdEnv = append(cmdEnv, "REMINDER_SINK_NO_LOG=true")
	}
	cmd.Env = cmdEnv

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}
