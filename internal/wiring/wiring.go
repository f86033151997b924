// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/packsmith/internal/adapters/cas"
	_ "go.trai.ch/packsmith/internal/adapters/catalog"
	_ "go.trai.ch/packsmith/internal/adapters/config"
	_ "go.trai.ch/packsmith/internal/adapters/fs"
	_ "go.trai.ch/packsmith/internal/adapters/logger"
	_ "go.trai.ch/packsmith/internal/adapters/settings"
	_ "go.trai.ch/packsmith/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/packsmith/internal/app"
	_ "go.trai.ch/packsmith/internal/engine/assembler"
	_ "go.trai.ch/packsmith/internal/engine/download"
	_ "go.trai.ch/packsmith/internal/engine/fetch"
	_ "go.trai.ch/packsmith/internal/engine/loader"
	_ "go.trai.ch/packsmith/internal/engine/scheduler"
)
