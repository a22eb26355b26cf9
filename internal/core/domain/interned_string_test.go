package domain_test

import (
	"testing"

	"github.com/ktmlm/RUC/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("build")
	is2 := domain.NewInternedString("build")

	// Identical strings share a handle and compare equal.
	if is1 != is2 {
		t.Errorf("Expected interned strings to be equal for identical input, got %v and %v", is1, is2)
	}

	if is1.String() != "build" {
		t.Errorf("Expected String() to return %q, got %q", "build", is1.String())
	}
}

func TestInternedStrings(t *testing.T) {
	names := []string{"all", "build", "test"}

	interned := domain.NewInternedStrings(names)
	if len(interned) != len(names) {
		t.Fatalf("Expected %d interned strings, got %d", len(names), len(interned))
	}

	for i, is := range interned {
		if is.String() != names[i] {
			t.Errorf("Expected element %d to be %q, got %q", i, names[i], is.String())
		}
	}
}
