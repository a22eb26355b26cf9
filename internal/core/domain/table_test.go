package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktmlm/RUC/internal/core/domain"
)

func builtinRegistry(t *testing.T) *domain.Registry {
	t.Helper()

	reg := domain.NewRegistry()
	for _, target := range domain.BuiltinTargets() {
		require.NoError(t, reg.Add(&target))
	}
	return reg
}

func TestBuiltinTargets_Table(t *testing.T) {
	targets := domain.BuiltinTargets()

	var names []string
	for _, target := range targets {
		names = append(names, target.Name.String())
	}
	assert.Equal(t, []string{"all", "build", "lint", "release", "test", "fmt", "doc", "clean"}, names)

	commandCounts := map[string]int{
		"all":     0,
		"build":   1,
		"lint":    2,
		"release": 1,
		"test":    2,
		"fmt":     1,
		"doc":     1,
		"clean":   1,
	}
	for _, target := range targets {
		assert.Len(t, target.Commands, commandCounts[target.Name.String()],
			"command count for %s", target.Name.String())
	}
}

func TestBuiltinTargets_AllAggregates(t *testing.T) {
	reg := builtinRegistry(t)

	all, ok := reg.Lookup(domain.NewInternedString("all"))
	require.True(t, ok)
	assert.Empty(t, all.Commands)
	assert.Equal(t, []domain.InternedString{domain.NewInternedString("build")}, all.Prerequisites)
}

func TestBuiltinTargets_Validates(t *testing.T) {
	reg := builtinRegistry(t)
	require.NoError(t, reg.Validate())
}

func TestBuiltinTargets_DefaultPlan(t *testing.T) {
	reg := builtinRegistry(t)

	plan, err := reg.Resolve(domain.NewInternedString(domain.DefaultTarget))
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "all"}, planNames(plan))
}

func TestBuiltinTargets_LeafPlans(t *testing.T) {
	reg := builtinRegistry(t)

	for _, name := range []string{"clean", "fmt", "test"} {
		plan, err := reg.Resolve(domain.NewInternedString(name))
		require.NoError(t, err)
		assert.Equal(t, []string{name}, planNames(plan))
	}
}
