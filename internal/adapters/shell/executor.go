// Package shell provides an executor that runs target commands as child
// processes of the runner.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/zerr"

	"github.com/ktmlm/RUC/internal/core/domain"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the command and waits for it to complete. The child inherits
// the runner's environment, working directory and stdin; stdout and stderr
// go to the given writers unmodified.
func (e *Executor) Execute(ctx context.Context, command domain.Command, stdout, stderr io.Writer) error {
	if len(command) == 0 {
		return domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // user provided command
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitErr.ExitCode())
		}
		return zerr.Wrap(err, "command could not start")
	}

	return nil
}
