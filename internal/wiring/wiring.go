// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/atlas/internal/adapters/config"
	_ "go.trai.ch/atlas/internal/adapters/dataset"
	_ "go.trai.ch/atlas/internal/adapters/logger"
	_ "go.trai.ch/atlas/internal/adapters/metrics"
	_ "go.trai.ch/atlas/internal/adapters/telemetry"
	_ "go.trai.ch/atlas/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/atlas/internal/app"
)
