package overlay

import (
	"fmt"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
)

const (
	warActiveColor = "#e74c3c"
	warPastColor   = "#888"
)

// Wars draws conflicts at their theater. Finished wars remain as grey markers.
type Wars struct {
	wars []domain.War
}

// NewWars creates the wars overlay.
func NewWars(wars []domain.War) *Wars {
	return &Wars{wars: wars}
}

// Category implements Overlay.
func (w *Wars) Category() domain.Category { return domain.CategoryWars }

// Draw implements Overlay.
func (w *Wars) Draw(y domain.Year) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, war := range w.wars {
		phase := war.TimeRange().PhaseAt(y)
		if phase != domain.PhaseActive && phase != domain.PhasePast {
			continue
		}
		active := phase == domain.PhaseActive

		marker := domain.DrawCommand{
			Category:  domain.CategoryWars,
			Primitive: domain.PrimitiveCircleMarker,
			Points:    []domain.GeoPoint{war.Location},
			Radius:    15,
			Style: domain.Style{
				Color:       "#666",
				FillColor:   warPastColor,
				Weight:      1,
				Opacity:     1,
				FillOpacity: 0.3,
			},
			Tooltip: "⚔️ " + war.Name,
			Popup:   warPopup(war, active),
		}
		if active {
			marker.Radius = 25
			marker.Style = domain.Style{
				Color:       "#fff",
				FillColor:   warActiveColor,
				Weight:      3,
				Opacity:     1,
				FillOpacity: 0.6,
				ClassName:   "war-active",
			}
			marker.Tooltip += " (ONGOING)"
		}
		cmds = append(cmds, marker)

		if active {
			cmds = append(cmds, domain.DrawCommand{
				Category:  domain.CategoryWars,
				Primitive: domain.PrimitiveCircleMarker,
				Points:    []domain.GeoPoint{war.Location},
				Radius:    marker.Radius + 15,
				Style: domain.Style{
					Color:       warActiveColor,
					FillColor:   warActiveColor,
					Weight:      2,
					Opacity:     0.4,
					FillOpacity: 0.2,
				},
			})
		}
	}
	return cmds
}

func warPopup(war domain.War, active bool) map[string]any {
	status := "📜 Historical"
	if active {
		status = "⚔️ ACTIVE"
	}
	return map[string]any{
		"name":         war.Name,
		"status":       status,
		"period":       period(war.Start, war.End),
		"belligerents": strings.Join(war.Belligerents, " vs "),
		"victor":       war.Victor,
		"casualties":   war.Casualties,
		"theater":      war.Theater,
		"battles":      war.Battles,
		"outcome":      war.Outcome,
		"significance": war.Significance,
	}
}

// Active returns the wars being fought at y.
func (w *Wars) Active(y domain.Year) []domain.War {
	return domain.ActiveRecords(w.wars, y)
}

// Summary implements Overlay.
func (w *Wars) Summary(y domain.Year) domain.Summary {
	if len(w.wars) == 0 {
		return noData(domain.CategoryWars)
	}
	active := w.Active(y)
	s := domain.Summary{
		Category: domain.CategoryWars,
		Count:    len(active),
		Headline: fmt.Sprintf("%d ongoing wars", len(active)),
	}
	if len(active) == 1 {
		s.Headline = "1 ongoing war"
	}
	for _, war := range active {
		s.Details = append(s.Details, "⚔️ "+war.Name+" ("+period(war.Start, war.End)+")")
	}
	return s
}
