package deploy

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

const defaultShell = "sh"

// Executor runs the deploy command and reports its combined output and exit code.
type Executor interface {
	Execute(ctx context.Context, command string) (output []byte, exitCode int, err error)
}

type ShellExecutor struct {
	Shell string
}

func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{Shell: defaultShell}
}

func (e *ShellExecutor) Execute(ctx context.Context, command string) ([]byte, int, error) {
	shell := e.Shell
	if shell == "" {
		shell = defaultShell
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return output, 0, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("deploy command timed out: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return output, exitErr.ExitCode(), err
	}
	return output, -1, err
}
