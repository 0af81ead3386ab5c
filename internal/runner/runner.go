package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/slok/reminder-sink/internal/conventions"
	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
	"github.com/slok/reminder-sink/internal/shebang"
)

// waitDelay bounds how long a killed script can keep its output pipes open
// before they are closed forcibly, so a timeout can't hang the pool.
const waitDelay = 5 * time.Second

// ServiceConfig is the configuration for the runner service.
type ServiceConfig struct {
	// DefaultInterpreter runs scripts that don't declare a usable shebang.
	// Defaults to bash.
	DefaultInterpreter string
	// Workers caps the number of scripts running at once. Defaults to the
	// number of CPUs.
	Workers int
	// Timeout kills a script running longer than this. Zero disables it.
	Timeout time.Duration
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.DefaultInterpreter == "" {
		c.DefaultInterpreter = conventions.DefaultInterpreter
	}

	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers can't be negative")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout can't be negative")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "runner.Service"})

	return nil
}

// Service executes reminder scripts concurrently with a bounded worker pool.
type Service struct {
	defaultCmd []string
	workers    int
	timeout    time.Duration
	logger     log.Logger
}

// NewService creates a new runner service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	defaultCmd, err := shebang.SplitCommand(cfg.DefaultInterpreter)
	if err != nil {
		return nil, fmt.Errorf("invalid default interpreter: %w", err)
	}

	return &Service{
		defaultCmd: defaultCmd,
		workers:    cfg.Workers,
		timeout:    cfg.Timeout,
		logger:     cfg.Logger,
	}, nil
}

// Request represents the run request parameters.
type Request struct {
	// Scripts to execute. Disabled scripts are skipped.
	Scripts []model.Script
}

// Run executes every enabled script and returns one result per executed
// script, in request order. A script that can't run comes back as a result
// with Err set, it never aborts the rest of the pool.
func (s *Service) Run(ctx context.Context, req Request) ([]model.ExecutionResult, error) {
	logger := s.logger.WithCtxValues(ctx)

	// 1. Keep only the enabled scripts.
	scripts := make([]model.Script, 0, len(req.Scripts))
	for _, script := range req.Scripts {
		if !script.Enabled {
			logger.Debugf("%s: not enabled", script.Name())
			continue
		}
		scripts = append(scripts, script)
	}

	logger.Debugf("running %d scripts with %d workers", len(scripts), s.workers)

	// 2. Execute them. Every worker writes only its own slot of the result
	// slice, so results keep the request order without locking.
	results := make([]model.ExecutionResult, len(scripts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, script := range scripts {
		// Copy the loop variables: with the go directive below 1.22 they are
		// shared across iterations, and each goroutine must see its own pair.
		i, script := i, script
		g.Go(func() error {
			results[i] = s.runScript(ctx, script)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not run scripts: %w", err)
	}

	return results, nil
}

func (s *Service) runScript(ctx context.Context, script model.Script) model.ExecutionResult {
	name := script.Name()
	logger := s.logger.WithCtxValues(ctx)
	result := model.ExecutionResult{Script: script, StartedAt: time.Now()}

	// Resolve the interpreter lazily, the file contents only matter now.
	cmdWords, err := shebang.Resolve(script.Path)
	if err != nil {
		result.Err = fmt.Errorf("could not resolve interpreter: %w", err)
		result.Duration = time.Since(result.StartedAt)
		return result
	}
	if cmdWords == nil {
		cmdWords = s.defaultCmd
	}

	args := make([]string, 0, len(cmdWords)+1)
	args = append(args, cmdWords...)
	args = append(args, script.Path)

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	logger.Debugf("%s: starting %q", name, strings.Join(args, " "))

	err = cmd.Run()
	result.Duration = time.Since(result.StartedAt)
	result.Stdout = stdout.String()

	if errLines := stderr.String(); errLines != "" {
		for _, line := range strings.Split(strings.TrimRight(errLines, "\n"), "\n") {
			logger.Debugf("%s: %s", name, strings.TrimRight(line, "\r"))
		}
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		if exitErr.ExitCode() == -1 && runCtx.Err() != nil {
			// Killed by the timeout or an outside cancellation, not a real
			// script exit code.
			result.Err = fmt.Errorf("script killed: %w", runCtx.Err())
		} else {
			result.ExitCode = exitErr.ExitCode()
		}
	default:
		result.Err = fmt.Errorf("could not run script: %w", err)
	}

	logger.Debugf("%s: finished in %s with exit code %d and output %q",
		name, result.Duration.Round(time.Millisecond), result.ExitCode, strings.TrimSpace(result.Stdout))

	return result
}
