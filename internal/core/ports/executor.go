// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/ktmlm/RUC/internal/core/domain"
)

// Executor defines the interface for running a single target command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given command as a child process of the runner.
	//
	// The child inherits the runner's environment and working directory.
	// stdout and stderr receive the streams of the child.
	//
	// It returns an error if the command cannot start or exits non-zero.
	Execute(ctx context.Context, command domain.Command, stdout, stderr io.Writer) error
}
