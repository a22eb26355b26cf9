// Package build holds build-time information.
package build

// These values default to placeholders for development builds and are
// overwritten by linker flags during release builds.
var (
	// Version is the application version.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
