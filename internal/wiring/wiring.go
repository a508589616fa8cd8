// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reify/internal/adapters/config"
	_ "go.trai.ch/reify/internal/adapters/fs"
	_ "go.trai.ch/reify/internal/adapters/logger"
	_ "go.trai.ch/reify/internal/adapters/shell"
	_ "go.trai.ch/reify/internal/adapters/tap"
	_ "go.trai.ch/reify/internal/adapters/telemetry"
	_ "go.trai.ch/reify/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/reify/internal/app"
	_ "go.trai.ch/reify/internal/engine/reify"
)
