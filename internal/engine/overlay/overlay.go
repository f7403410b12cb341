// Package overlay turns the loaded datasets into draw commands and summaries for a year.
// Every overlay is a pure function of its read-only records and the query year.
package overlay

import (
	"go.trai.ch/atlas/internal/core/domain"
)

// Overlay draws one category at a year.
type Overlay interface {
	Category() domain.Category
	// Draw regenerates the full command list for y. It never returns stale commands.
	Draw(y domain.Year) []domain.DrawCommand
	// Summary digests the category at y.
	Summary(y domain.Year) domain.Summary
}

// State is the visibility of one category.
type State struct {
	Category domain.Category `json:"category"`
	Visible  bool            `json:"visible"`
}

// ComputeDrawCommands returns the commands of o at y, or nil when the state is hidden.
func ComputeDrawCommands(s State, o Overlay, y domain.Year) []domain.DrawCommand {
	if !s.Visible || o == nil {
		return nil
	}
	return o.Draw(y)
}

// NoDataHeadline is the summary headline of a category without records.
const NoDataHeadline = "No data"

func noData(c domain.Category) domain.Summary {
	return domain.Summary{Category: c, Headline: NoDataHeadline}
}

func point(lat, lng float64) domain.GeoPoint {
	return domain.GeoPoint{Lat: lat, Lng: lng}
}

func period(start, end domain.Year) string {
	return domain.FormatYear(start) + " – " + domain.FormatYear(end)
}
