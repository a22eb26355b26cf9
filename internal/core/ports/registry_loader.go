package ports

import "github.com/ktmlm/RUC/internal/core/domain"

// RegistryLoader defines the interface for building the target registry.
//
//go:generate mockgen -source=registry_loader.go -destination=mocks/mock_registry_loader.go -package=mocks
type RegistryLoader interface {
	// Load builds the registry for the given working directory and
	// validates it. The result is the built-in table plus whatever the
	// overlay file contributes.
	Load(cwd string) (*domain.Registry, error)

	// DiscoverRoot walks up from cwd to find the directory holding the
	// overlay file. It returns cwd itself when no overlay exists.
	DiscoverRoot(cwd string) (string, error)
}
