package ports

import (
	"context"

	"go.trai.ch/atlas/internal/core/domain"
)

// Renderer is the abstraction for presenting overlay frames and lookup updates.
// The same frame stream drives either the interactive explorer or linear output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like the TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnFrame is called with the regenerated output of every visible overlay.
	OnFrame(frame domain.Frame)

	// OnLookup is called whenever the location lookup changes state.
	OnLookup(update domain.LookupUpdate)
}
