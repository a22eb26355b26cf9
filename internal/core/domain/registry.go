package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Registry is a mapping from target name to Target, built once at startup
// and immutable for the rest of the invocation. Declaration order is
// preserved: it is the tie-break among sibling prerequisites during
// resolution and the order listings use.
type Registry struct {
	targets map[InternedString]Target
	order   []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[InternedString]Target),
	}
}

// Add registers a target. Redefining an existing name is a configuration
// error.
func (r *Registry) Add(t *Target) error {
	if _, exists := r.targets[t.Name]; exists {
		return zerr.With(ErrDuplicateTarget, "target", t.Name.String())
	}
	r.targets[t.Name] = *t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the target registered under name.
func (r *Registry) Lookup(name InternedString) (Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// All returns an iterator over targets in declaration order.
func (r *Registry) All() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range r.order {
			if !yield(r.targets[name]) {
				return
			}
		}
	}
}

// Resolve produces the execution plan for the requested target: a
// depth-first walk over prerequisite edges that visits every prerequisite
// before its dependent and each target at most once, even when it is
// reachable along several paths. Sibling prerequisites keep declaration
// order, so resolution is deterministic. Resolution has no side effects;
// a cycle on the current path or a prerequisite that names no registered
// target fails the whole resolution.
func (r *Registry) Resolve(name InternedString) ([]Target, error) {
	if _, ok := r.targets[name]; !ok {
		return nil, zerr.With(ErrTargetNotFound, "target", name.String())
	}

	w := r.newWalk()
	if err := w.visit(name); err != nil {
		return nil, err
	}
	return w.plan, nil
}

// Validate resolves every registered target in declaration order. It
// rejects registries with prerequisite cycles or prerequisites that name
// no registered target, so a bad registry fails before anything executes.
func (r *Registry) Validate() error {
	w := r.newWalk()
	for _, name := range r.order {
		if w.state[name] != stateUnvisited {
			continue
		}
		if err := w.visit(name); err != nil {
			return err
		}
	}
	return nil
}

type visitState uint8

const (
	stateUnvisited visitState = iota
	stateOnPath
	stateDone
)

// walk tracks one depth-first traversal over prerequisite edges.
type walk struct {
	reg   *Registry
	state map[InternedString]visitState
	path  []InternedString
	plan  []Target
}

func (r *Registry) newWalk() *walk {
	return &walk{
		reg:   r,
		state: make(map[InternedString]visitState, len(r.targets)),
	}
}

func (w *walk) visit(u InternedString) error {
	w.state[u] = stateOnPath
	w.path = append(w.path, u)

	target, exists := w.reg.targets[u]
	if !exists {
		return zerr.With(ErrMissingPrerequisite, "prerequisite", u.String())
	}

	for _, pre := range target.Prerequisites {
		switch w.state[pre] {
		case stateOnPath:
			return w.cycleError(pre)
		case stateUnvisited:
			if err := w.visit(pre); err != nil {
				return err
			}
		case stateDone:
			// Already planned via another path.
		}
	}

	w.state[u] = stateDone
	w.path = w.path[:len(w.path)-1]
	w.plan = append(w.plan, target)
	return nil
}

// cycleError builds the cycle configuration error with the offending path.
func (w *walk) cycleError(pre InternedString) error {
	var b strings.Builder
	start := slices.Index(w.path, pre)
	for _, node := range w.path[start:] {
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(pre.String())
	return zerr.With(ErrCycleDetected, "cycle", b.String())
}
