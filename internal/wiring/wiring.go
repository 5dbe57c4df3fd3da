// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modup/internal/adapters/config"
	_ "go.trai.ch/modup/internal/adapters/index"
	_ "go.trai.ch/modup/internal/adapters/installer"
	_ "go.trai.ch/modup/internal/adapters/inventory"
	_ "go.trai.ch/modup/internal/adapters/logger"
	_ "go.trai.ch/modup/internal/adapters/process"
	_ "go.trai.ch/modup/internal/adapters/prompt"
	_ "go.trai.ch/modup/internal/adapters/registry"
	_ "go.trai.ch/modup/internal/adapters/report"
	// Register app and engine nodes.
	_ "go.trai.ch/modup/internal/app"
	_ "go.trai.ch/modup/internal/engine/reconciler"
)
