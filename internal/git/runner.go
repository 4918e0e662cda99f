package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes the git binary.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ToolError is returned when a git invocation exits unsuccessfully.
type ToolError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := e.Stderr
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), msg)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ExecRunner runs a git binary found on PATH or at GitBin.
type ExecRunner struct {
	GitBin string
	Logger *zap.Logger
}

// NewExecRunner creates a runner for gitBin, defaulting to "git".
func NewExecRunner(gitBin string, logger *zap.Logger) *ExecRunner {
	if strings.TrimSpace(gitBin) == "" {
		gitBin = "git"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{GitBin: gitBin, Logger: logger}
}

// Run executes git with args and returns its stdout.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.GitBin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.Logger.Debug("git invocation",
		zap.Strings("args", args),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("stdout_bytes", stdout.Len()),
		zap.Error(err),
	)
	if err != nil {
		toolErr := &ToolError{
			Args:     args,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		return nil, toolErr
	}
	return stdout.Bytes(), nil
}
