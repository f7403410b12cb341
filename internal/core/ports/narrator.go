package ports

import (
	"context"

	"go.trai.ch/atlas/internal/core/domain"
)

// Narrator produces a historical narrative for a prompt.
//
//go:generate mockgen -source=narrator.go -destination=mocks/mock_narrator.go -package=mocks
type Narrator interface {
	// Narrate returns the generated text. Failures wrap domain.ErrNetwork,
	// domain.ErrRateLimited or domain.ErrEmptyResponse.
	Narrate(ctx context.Context, prompt string) (string, error)
}

// Geocoder resolves coordinates to a human readable place name.
type Geocoder interface {
	// ReverseGeocode never fails: on any error it returns the formatted coordinates.
	ReverseGeocode(ctx context.Context, p domain.GeoPoint) string
}
