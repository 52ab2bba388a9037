package app

import "go.trai.ch/depcache/internal/core/ports"

// Components is what the CLI needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
