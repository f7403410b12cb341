// Package tui provides the interactive terminal explorer.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
)

// Option configures a Model.
type Option func(*Model)

// WithCenter sets the initial map center.
func WithCenter(p domain.GeoPoint) Option {
	return func(m *Model) { m.Center = p }
}

// WithZoom sets the initial zoom level.
func WithZoom(z int) Option {
	return func(m *Model) { m.Zoom = clampZoom(z) }
}

// WithZoomThreshold sets the zoom level from which lookups are shown.
func WithZoomThreshold(z int) Option {
	return func(m *Model) { m.Threshold = z }
}

// WithStep sets how many years the left and right keys move.
func WithStep(years int) Option {
	return func(m *Model) {
		if years > 0 {
			m.Step = years
		}
	}
}

// NewModel creates an explorer over coord. trigger receives every view change;
// it may be nil when lookups are disabled.
func NewModel(coord Coordinator, trigger func(lookup.Trigger), opts ...Option) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = yearStyle

	m := Model{
		coord:     coord,
		trigger:   trigger,
		Zoom:      defaultZoom,
		Threshold: domain.DefaultZoomThreshold,
		Step:      defaultStep,
		Spans:     make(map[string]telemetrySpan),
		Viewport:  viewport.New(0, 0),
		Spinner:   s,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if coord != nil {
		m.Frame = coord.Current()
		m.States = coord.States()
	}
	return m
}
