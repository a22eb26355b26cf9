package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/ktmlm/RUC/internal/core/domain"
)

type registryEntry struct {
	name    string
	prereqs []string
}

// newRegistry builds a registry from name -> prerequisites pairs, preserving
// the given declaration order.
func newRegistry(t *testing.T, entries []registryEntry) *domain.Registry {
	t.Helper()

	reg := domain.NewRegistry()
	for _, e := range entries {
		target := &domain.Target{
			Name:          domain.NewInternedString(e.name),
			Prerequisites: domain.NewInternedStrings(e.prereqs),
		}
		require.NoError(t, reg.Add(target))
	}
	return reg
}

func planNames(plan []domain.Target) []string {
	names := make([]string, len(plan))
	for i, t := range plan {
		names[i] = t.Name.String()
	}
	return names
}

func TestRegistry_Add_Duplicate(t *testing.T) {
	reg := domain.NewRegistry()
	target := &domain.Target{Name: domain.NewInternedString("build")}

	require.NoError(t, reg.Add(target))

	err := reg.Add(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateTarget)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "build", zErr.Metadata()["target"])
}

func TestRegistry_Resolve_Order(t *testing.T) {
	tests := []struct {
		name     string
		entries  []registryEntry
		request  string
		wantPlan []string
	}{
		{
			name: "prerequisite before dependent",
			entries: []registryEntry{
				{"all", []string{"build"}},
				{"build", nil},
			},
			request:  "all",
			wantPlan: []string{"build", "all"},
		},
		{
			name: "no prerequisites",
			entries: []registryEntry{
				{"test", nil},
			},
			request:  "test",
			wantPlan: []string{"test"},
		},
		{
			name: "chain",
			entries: []registryEntry{
				{"a", []string{"b"}},
				{"b", []string{"c"}},
				{"c", nil},
			},
			request:  "a",
			wantPlan: []string{"c", "b", "a"},
		},
		{
			name: "diamond deduplicates the shared prerequisite",
			entries: []registryEntry{
				{"top", []string{"left", "right"}},
				{"left", []string{"base"}},
				{"right", []string{"base"}},
				{"base", nil},
			},
			request:  "top",
			wantPlan: []string{"base", "left", "right", "top"},
		},
		{
			name: "siblings keep declaration order",
			entries: []registryEntry{
				{"root", []string{"c", "a", "b"}},
				{"c", nil},
				{"a", nil},
				{"b", nil},
			},
			request:  "root",
			wantPlan: []string{"c", "a", "b", "root"},
		},
		{
			name: "only the requested subgraph is planned",
			entries: []registryEntry{
				{"all", []string{"build"}},
				{"build", nil},
				{"unrelated", nil},
			},
			request:  "build",
			wantPlan: []string{"build"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newRegistry(t, tt.entries)

			plan, err := reg.Resolve(domain.NewInternedString(tt.request))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPlan, planNames(plan))
		})
	}
}

func TestRegistry_Resolve_TopologicalInvariant(t *testing.T) {
	entries := []registryEntry{
		{"release", []string{"lint", "test"}},
		{"lint", []string{"build"}},
		{"test", []string{"build"}},
		{"build", []string{"generate"}},
		{"generate", nil},
		{"docs", []string{"build"}},
	}
	reg := newRegistry(t, entries)

	for _, e := range entries {
		plan, err := reg.Resolve(domain.NewInternedString(e.name))
		require.NoError(t, err)

		position := make(map[string]int, len(plan))
		for i, target := range plan {
			position[target.Name.String()] = i
		}

		for _, target := range plan {
			for _, pre := range target.Prerequisites {
				assert.Less(t, position[pre.String()], position[target.Name.String()],
					"prerequisite %s must precede %s", pre.String(), target.Name.String())
			}
		}
	}
}

func TestRegistry_Resolve_Deterministic(t *testing.T) {
	reg := newRegistry(t, []registryEntry{
		{"top", []string{"left", "right"}},
		{"left", []string{"base"}},
		{"right", []string{"base"}},
		{"base", nil},
	})

	first, err := reg.Resolve(domain.NewInternedString("top"))
	require.NoError(t, err)
	second, err := reg.Resolve(domain.NewInternedString("top"))
	require.NoError(t, err)

	assert.Equal(t, planNames(first), planNames(second))
}

func TestRegistry_Resolve_UnknownTarget(t *testing.T) {
	reg := newRegistry(t, []registryEntry{
		{"build", nil},
	})

	_, err := reg.Resolve(domain.NewInternedString("bogus"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestRegistry_Resolve_MissingPrerequisite(t *testing.T) {
	reg := newRegistry(t, []registryEntry{
		{"all", []string{"ghost"}},
	})

	_, err := reg.Resolve(domain.NewInternedString("all"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingPrerequisite)
}

func TestRegistry_Resolve_Cycle(t *testing.T) {
	tests := []struct {
		name      string
		entries   []registryEntry
		request   string
		wantCycle string
	}{
		{
			name: "self reference",
			entries: []registryEntry{
				{"loop", []string{"loop"}},
			},
			request:   "loop",
			wantCycle: "loop -> loop",
		},
		{
			name: "mutual reference",
			entries: []registryEntry{
				{"a", []string{"b"}},
				{"b", []string{"a"}},
			},
			request:   "a",
			wantCycle: "a -> b -> a",
		},
		{
			name: "cycle below an acyclic entry point",
			entries: []registryEntry{
				{"entry", []string{"a"}},
				{"a", []string{"b"}},
				{"b", []string{"a"}},
			},
			request:   "entry",
			wantCycle: "a -> b -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newRegistry(t, tt.entries)

			_, err := reg.Resolve(domain.NewInternedString(tt.request))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCycleDetected)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.wantCycle, zErr.Metadata()["cycle"])
		})
	}
}

func TestRegistry_Validate(t *testing.T) {
	t.Run("accepts acyclic registries", func(t *testing.T) {
		reg := newRegistry(t, []registryEntry{
			{"all", []string{"build"}},
			{"build", nil},
		})
		require.NoError(t, reg.Validate())
	})

	t.Run("rejects a cycle anywhere in the registry", func(t *testing.T) {
		reg := newRegistry(t, []registryEntry{
			{"fine", nil},
			{"a", []string{"b"}},
			{"b", []string{"a"}},
		})
		err := reg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCycleDetected)
	})

	t.Run("rejects prerequisites that name no target", func(t *testing.T) {
		reg := newRegistry(t, []registryEntry{
			{"all", []string{"ghost"}},
		})
		err := reg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingPrerequisite)
	})
}

func TestRegistry_All_DeclarationOrder(t *testing.T) {
	reg := newRegistry(t, []registryEntry{
		{"zeta", nil},
		{"alpha", nil},
		{"mid", nil},
	})

	var names []string
	for target := range reg.All() {
		names = append(names, target.Name.String())
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
	assert.Equal(t, 3, reg.Len())
}
