package git

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bashhack/devboot/internal/common"
	"github.com/bashhack/devboot/internal/errors"
)

// CommandExecutor defines an interface for executing commands
type CommandExecutor interface {
	// Execute runs a command and reports whether it succeeded
	Execute(ctx context.Context, cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its standard output
	ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(ctx context.Context, cmd *exec.Cmd) error {
	_, err := e.ExecuteWithOutput(ctx, cmd)
	return err
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		operation, args := splitArgs(cmd)

		// Keep both the sentinel and the *exec.ExitError in the chain so
		// callers can tell a non-zero exit from a failure to start.
		wrappedErr := errors.Errorf("%w: %w", errors.ErrGitOperationFailed, err)
		return "", errors.NewGitError(operation, args, wrappedErr, stderr.String())
	}

	return stdout.String(), nil
}

// DryRunExecutor prints each command instead of running it.
type DryRunExecutor struct {
	logger   common.Logger
	Commands []string
}

// NewDryRunExecutor creates a DryRunExecutor that reports through logger.
func NewDryRunExecutor(logger common.Logger) *DryRunExecutor {
	return &DryRunExecutor{logger: logger}
}

// Execute implements CommandExecutor.Execute
func (e *DryRunExecutor) Execute(ctx context.Context, cmd *exec.Cmd) error {
	_, err := e.ExecuteWithOutput(ctx, cmd)
	return err
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput.
// The returned output is always empty.
func (e *DryRunExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line := FormatCommand(cmd.Args)
	e.Commands = append(e.Commands, line)
	e.logger.StatusMessage("  $ %s", line)
	return "", nil
}

// FormatCommand renders argv as a shell-like line, quoting arguments that
// contain whitespace or quotes.
func FormatCommand(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			parts[i] = strconv.Quote(arg)
		} else {
			parts[i] = arg
		}
	}
	return strings.Join(parts, " ")
}

// splitArgs returns the git subcommand and its arguments, skipping the
// binary name and any leading "-C <dir>" pair.
func splitArgs(cmd *exec.Cmd) (string, []string) {
	args := cmd.Args
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) >= 2 && args[0] == "-C" {
		args = args[2:]
	}
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}
