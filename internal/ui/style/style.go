// Package style holds the colors and glyphs shared by the terminal front ends.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/atlas/internal/core/domain"
)

// Palette.
var (
	Parchment = lipgloss.Color("#F4E9D8")
	Ink       = lipgloss.Color("#1A1A2E")
	Slate     = lipgloss.Color("#667085")
	Gold      = lipgloss.Color("#D4A017")
	Green     = lipgloss.Color("#22A06B")
	Red       = lipgloss.Color("#D93025")
	Yellow    = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

var categoryGlyphs = map[domain.Category]string{
	domain.CategoryClimate:    "🌡️",
	domain.CategoryPopulation: "👥",
	domain.CategoryTrade:      "🐪",
	domain.CategoryReligions:  "🕊️",
	domain.CategoryTechnology: "⚙️",
	domain.CategoryPlagues:    "☠️",
	domain.CategoryWars:       "⚔️",
	domain.CategoryWonders:    "🏛️",
	domain.CategoryRulers:     "👑",
}

// Glyph returns the icon of a category, or Dot for unknown ones.
func Glyph(c domain.Category) string {
	if g, ok := categoryGlyphs[c]; ok {
		return g
	}
	return Dot
}
