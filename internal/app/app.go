// Package app implements the application layer for ruc.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"

	"go.trai.ch/zerr"

	"github.com/ktmlm/RUC/internal/adapters/linear"
	"github.com/ktmlm/RUC/internal/adapters/shell"
	"github.com/ktmlm/RUC/internal/core/domain"
	"github.com/ktmlm/RUC/internal/core/ports"
	"github.com/ktmlm/RUC/internal/engine/dispatcher"
)

// App represents the main application logic.
type App struct {
	loader   ports.RegistryLoader
	executor ports.Executor
	logger   ports.Logger
	watcher  ports.Watcher
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a new App instance.
func New(loader ports.RegistryLoader, executor ports.Executor, log ports.Logger, watcher ports.Watcher) *App {
	return &App{
		loader:   loader,
		executor: executor,
		logger:   log,
		watcher:  watcher,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput redirects command and progress output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	DryRun bool
	Watch  bool
}

// Run executes the requested target. An empty name selects the default
// target. With Watch set, the run repeats whenever files below the project
// root change, until the context is cancelled.
func (a *App) Run(ctx context.Context, target string, opts RunOptions) error {
	if opts.Watch {
		return a.watch(ctx, target, opts)
	}
	return a.runOnce(ctx, target, opts)
}

// Targets returns the registered targets in declaration order.
func (a *App) Targets(_ context.Context) ([]domain.Target, error) {
	reg, err := a.loadRegistry()
	if err != nil {
		return nil, err
	}
	return slices.Collect(reg.All()), nil
}

// loadRegistry builds the registry for the current working directory.
func (a *App) loadRegistry() (*domain.Registry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	reg, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load target registry")
	}
	return reg, nil
}

// runOnce performs a single load, resolve and dispatch cycle.
func (a *App) runOnce(ctx context.Context, target string, opts RunOptions) error {
	reg, err := a.loadRegistry()
	if err != nil {
		return err
	}

	executor := a.executor
	if opts.DryRun {
		executor = shell.NewDryRunner()
	}

	renderer := linear.NewRenderer(a.stderr)
	disp := dispatcher.NewDispatcher(executor, renderer, a.stdout, a.stderr)

	if err := disp.Run(ctx, reg, target); err != nil {
		if resolutionError(err) {
			return err
		}
		// The renderer has already reported the failure.
		return errors.Join(domain.ErrRunFailed, err)
	}
	return nil
}

// resolutionError reports whether err was raised while settling the plan,
// before any command ran. Those errors bypass the renderer and must be
// reported by the caller.
func resolutionError(err error) bool {
	return errors.Is(err, domain.ErrTargetNotFound) ||
		errors.Is(err, domain.ErrCycleDetected) ||
		errors.Is(err, domain.ErrMissingPrerequisite)
}
