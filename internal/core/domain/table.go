package domain

// DefaultTarget is the target resolved when an invocation names none.
const DefaultTarget = "all"

// BuiltinTargets returns the fixed table of targets the runner ships with,
// in declaration order. The table is self-hosting: the commands drive the
// Go toolchain on the repository the runner is invoked in.
func BuiltinTargets() []Target {
	return []Target{
		{
			Name:          NewInternedString("all"),
			Prerequisites: NewInternedStrings([]string{"build"}),
		},
		{
			Name:     NewInternedString("build"),
			Commands: []Command{{"go", "build", "./..."}},
		},
		{
			Name: NewInternedString("lint"),
			Commands: []Command{
				{"go", "vet", "./..."},
				{"go", "vet", "-tags", "e2e", "./..."},
			},
		},
		{
			Name:     NewInternedString("release"),
			Commands: []Command{{"go", "build", "-trimpath", "-ldflags", "-s -w", "./..."}},
		},
		{
			Name: NewInternedString("test"),
			Commands: []Command{
				{"go", "test", "-p", "1", "-v", "./..."},
				{"go", "test", "-p", "1", "-v", "-tags", "e2e", "./..."},
			},
		},
		{
			Name:     NewInternedString("fmt"),
			Commands: []Command{{"gofmt", "-w", "."}},
		},
		{
			Name:     NewInternedString("doc"),
			Commands: []Command{{"pkgsite", "-open", "."}},
		},
		{
			Name:     NewInternedString("clean"),
			Commands: []Command{{"go", "clean", "./..."}},
		},
	}
}
