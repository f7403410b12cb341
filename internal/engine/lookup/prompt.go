package lookup

import (
	"fmt"

	"go.trai.ch/atlas/internal/core/domain"
)

const lookupPrompt = `You are a historical expert. Provide a concise but informative overview of what was happening at or near this location during this time period.

Location: %s (coordinates: %.4f, %.4f)
Time Period: Around %s

Please include (if known/relevant):
- Indigenous peoples or tribes in the area
- Settlements, towns, or colonies
- Forts, trading posts, or military presence
- Notable events or conflicts
- Economic activities (farming, trade, mining, etc.)
- Political governance (who controlled this area?)
- Any notable historical figures associated with this place/time

Be specific to this exact location and time. If this area was uninhabited or little is known, say so. Keep response under 300 words. Use bullet points for clarity.`

const placePrompt = `You are a historical expert. Provide a concise overview of %s during %s.

Include (if relevant):
• Indigenous peoples or tribes
• Settlements, colonies, or cities
• Political control (empire, kingdom)
• Notable events or conflicts
• Economic activities
• Notable historical figures

Keep response under 200 words. Use bullet points for clarity.`

// Prompt builds the narrative request for a map location at a year.
func Prompt(place string, p domain.GeoPoint, y domain.Year) string {
	return fmt.Sprintf(lookupPrompt, place, p.Lat, p.Lng, domain.FormatYear(y))
}

// PlacePrompt builds the shorter request used when only a place name is known.
func PlacePrompt(place string, y domain.Year) string {
	return fmt.Sprintf(placePrompt, place, domain.FormatYear(y))
}
