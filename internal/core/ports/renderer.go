package ports

import "time"

// Renderer is the abstraction for run progress output.
// It decouples dispatch bookkeeping from presentation logic.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once the execution plan is settled.
	// planned: all target names in execution order
	// prerequisites: prerequisite map (target -> list of prerequisites)
	// requested: the target the invocation asked for
	OnPlanEmit(planned []string, prerequisites map[string][]string, requested string)

	// OnTargetStart is called when a target begins execution.
	OnTargetStart(name string, startTime time.Time)

	// OnTargetComplete is called when a target finishes execution.
	// err is nil if every command of the target succeeded.
	OnTargetComplete(name string, endTime time.Time, err error)
}
