// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stylo/internal/adapters/config"
	_ "go.trai.ch/stylo/internal/adapters/fs"
	_ "go.trai.ch/stylo/internal/adapters/logger"
	_ "go.trai.ch/stylo/internal/adapters/metrics"
	_ "go.trai.ch/stylo/internal/adapters/scss"
	_ "go.trai.ch/stylo/internal/adapters/shell"
	_ "go.trai.ch/stylo/internal/adapters/snapshot"
	_ "go.trai.ch/stylo/internal/adapters/telemetry"
	_ "go.trai.ch/stylo/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/stylo/internal/app"
)
