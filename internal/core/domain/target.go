// Package domain contains the core domain model for the target registry and
// its resolution into execution plans.
package domain

import "strings"

// Command is a single external invocation as an argv vector. The first
// element is the program, the rest are its arguments.
type Command []string

// String returns the display form of the command.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Target is a named unit of work. Its prerequisites execute before the
// target's own commands. A target with no commands sequences its
// prerequisites and is otherwise a no-op.
type Target struct {
	Name          InternedString
	Prerequisites []InternedString
	Commands      []Command
}
