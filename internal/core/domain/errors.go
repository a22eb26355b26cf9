package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetNotFound is returned when a requested target is not registered.
	ErrTargetNotFound = zerr.New("no such target")

	// ErrDuplicateTarget is returned when registering a target under a name that is already taken.
	ErrDuplicateTarget = zerr.New("target already defined")

	// ErrMissingPrerequisite is returned when a prerequisite names no registered target.
	ErrMissingPrerequisite = zerr.New("missing prerequisite")

	// ErrCycleDetected is returned when resolution revisits a target on the current path.
	ErrCycleDetected = zerr.New("prerequisite cycle detected")

	// ErrReservedTargetName is returned when an overlay redefines a built-in target.
	ErrReservedTargetName = zerr.New("built-in target names cannot be redefined")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = zerr.New("target name can only contain alphanumeric characters, hyphens and underscores")

	// ErrEmptyCommand is returned when a target declares a command with no program.
	ErrEmptyCommand = zerr.New("command has no program")

	// ErrConfigReadFailed is returned when the overlay file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the overlay file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRunFailed is returned when dispatching a plan fails. The entry point
	// uses it to tell already-rendered failures apart from unreported ones.
	ErrRunFailed = zerr.New("run failed")

	// ErrTargetExecutionFailed is returned when a target's command exits non-zero.
	ErrTargetExecutionFailed = zerr.New("target execution failed")
)
