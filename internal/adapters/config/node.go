package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ktmlm/RUC/internal/adapters/logger"
	"github.com/ktmlm/RUC/internal/core/ports"
)

// NodeID is the unique identifier for the registry loader Graft node.
const NodeID graft.ID = "adapter.registry_loader"

func init() {
	graft.Register(graft.Node[ports.RegistryLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RegistryLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
