// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ktmlm/RUC/internal/adapters/config"
	_ "github.com/ktmlm/RUC/internal/adapters/logger"
	_ "github.com/ktmlm/RUC/internal/adapters/shell"
	_ "github.com/ktmlm/RUC/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/ktmlm/RUC/internal/app"
)
