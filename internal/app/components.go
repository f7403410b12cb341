package app

import "go.trai.ch/atlas/internal/core/ports"

// Components contains the initialized application dependencies.
type Components struct {
	App    *App
	Logger ports.Logger
}
