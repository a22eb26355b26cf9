package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/ktmlm/RUC/internal/core/domain"
)

// DryRunner implements ports.Executor by printing each command instead of
// running it. Plans can be inspected without side effects.
type DryRunner struct{}

// NewDryRunner creates a new DryRunner.
func NewDryRunner() *DryRunner {
	return &DryRunner{}
}

// Execute prints the command it would have run to stdout.
func (d *DryRunner) Execute(_ context.Context, command domain.Command, stdout, _ io.Writer) error {
	if len(command) == 0 {
		return domain.ErrEmptyCommand
	}

	_, err := fmt.Fprintln(stdout, command.String())
	return err
}
