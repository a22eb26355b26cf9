// Package dispatcher implements sequential plan execution.
package dispatcher

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"go.trai.ch/zerr"

	"github.com/ktmlm/RUC/internal/core/domain"
	"github.com/ktmlm/RUC/internal/core/ports"
)

// TargetStatus represents the status of a target during a run.
type TargetStatus string

const (
	// StatusPending indicates the target is waiting to be executed.
	StatusPending TargetStatus = "Pending"
	// StatusRunning indicates the target is currently executing.
	StatusRunning TargetStatus = "Running"
	// StatusCompleted indicates the target has finished successfully.
	StatusCompleted TargetStatus = "Completed"
	// StatusFailed indicates the target execution failed.
	StatusFailed TargetStatus = "Failed"
)

// Dispatcher executes the plan for a requested target: every planned target
// in prerequisite order, every command of a target in declaration order,
// one command at a time. The first failing command stops the run; later
// commands and targets never start.
type Dispatcher struct {
	executor ports.Executor
	renderer ports.Renderer
	stdout   io.Writer
	stderr   io.Writer

	mu     sync.RWMutex
	status map[domain.InternedString]TargetStatus
}

// NewDispatcher creates a new Dispatcher. Command output goes to stdout and
// stderr; progress reporting goes through the renderer.
func NewDispatcher(executor ports.Executor, renderer ports.Renderer, stdout, stderr io.Writer) *Dispatcher {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Dispatcher{
		executor: executor,
		renderer: renderer,
		stdout:   stdout,
		stderr:   stderr,
		status:   make(map[domain.InternedString]TargetStatus),
	}
}

// Status returns the status of a target during and after a run.
func (d *Dispatcher) Status(name domain.InternedString) TargetStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status[name]
}

// initStatuses initializes the status of every planned target to Pending.
func (d *Dispatcher) initStatuses(plan []domain.Target) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, target := range plan {
		d.status[target.Name] = StatusPending
	}
}

// updateStatus updates the status of a target.
func (d *Dispatcher) updateStatus(name domain.InternedString, status TargetStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status[name] = status
}

// Run resolves the requested target against the registry and executes the
// plan. An empty name requests the default target. Resolution failures
// surface before any command runs.
func (d *Dispatcher) Run(ctx context.Context, reg *domain.Registry, requested string) error {
	if requested == "" {
		requested = domain.DefaultTarget
	}

	plan, err := reg.Resolve(domain.NewInternedString(requested))
	if err != nil {
		return err
	}

	d.initStatuses(plan)
	d.emitPlan(plan, requested)

	for _, target := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.runTarget(ctx, target); err != nil {
			return err
		}
	}

	return nil
}

// emitPlan announces the settled plan to the renderer.
func (d *Dispatcher) emitPlan(plan []domain.Target, requested string) {
	planned := make([]string, len(plan))
	prerequisites := make(map[string][]string, len(plan))

	for i, target := range plan {
		planned[i] = target.Name.String()

		prereqs := make([]string, len(target.Prerequisites))
		for j, pre := range target.Prerequisites {
			prereqs[j] = pre.String()
		}
		prerequisites[target.Name.String()] = prereqs
	}

	d.renderer.OnPlanEmit(planned, prerequisites, requested)
}

// runTarget runs every command of the target in declaration order. A target
// without commands completes immediately.
func (d *Dispatcher) runTarget(ctx context.Context, target domain.Target) error {
	name := target.Name

	d.updateStatus(name, StatusRunning)
	d.renderer.OnTargetStart(name.String(), time.Now())

	for _, command := range target.Commands {
		if err := d.executor.Execute(ctx, command, d.stdout, d.stderr); err != nil {
			err = zerr.With(err, "command", command.String())
			err = zerr.With(zerr.Wrap(err, domain.ErrTargetExecutionFailed.Error()), "target", name.String())

			d.updateStatus(name, StatusFailed)
			d.renderer.OnTargetComplete(name.String(), time.Now(), err)
			return err
		}
	}

	d.updateStatus(name, StatusCompleted)
	d.renderer.OnTargetComplete(name.String(), time.Now(), nil)
	return nil
}
