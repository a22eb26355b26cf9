package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ktmlm/RUC/internal/adapters/config"
	"github.com/ktmlm/RUC/internal/adapters/logger"
	"github.com/ktmlm/RUC/internal/adapters/shell"
	"github.com/ktmlm/RUC/internal/adapters/watcher"
	"github.com/ktmlm/RUC/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RegistryLoader](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, executor, log, watch), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
