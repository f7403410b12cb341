package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
)

func TestPrompt(t *testing.T) {
	p := lookup.Prompt("Athens, Attica, Greece", domain.GeoPoint{Lat: 37.98381, Lng: 23.727539}, -430)

	assert.Contains(t, p, "Location: Athens, Attica, Greece (coordinates: 37.9838, 23.7275)")
	assert.Contains(t, p, "Time Period: Around 430 BCE")
	assert.Contains(t, p, "Keep response under 300 words.")
}

func TestPlacePrompt(t *testing.T) {
	p := lookup.PlacePrompt("Kyoto", 1600)

	assert.Contains(t, p, "concise overview of Kyoto during 1600 CE.")
	assert.Contains(t, p, "Keep response under 200 words.")
}
