package overlay

import (
	"fmt"

	"go.trai.ch/atlas/internal/core/domain"
)

// ReligionNewWindow is how long after its founding a religion is flagged as new.
const ReligionNewWindow domain.Year = 200

// Religions draws religion origins with fading spread lines.
type Religions struct {
	religions []domain.Religion
}

// NewReligions creates the religions overlay.
func NewReligions(religions []domain.Religion) *Religions {
	return &Religions{religions: religions}
}

// Category implements Overlay.
func (r *Religions) Category() domain.Category { return domain.CategoryReligions }

// Draw implements Overlay.
func (r *Religions) Draw(y domain.Year) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, rel := range r.religions {
		d := rel.Diffusion()
		if !d.Started(y) {
			continue
		}
		className := "religion-marker"
		if rel.Age(y) < ReligionNewWindow {
			className += " new"
		}
		cmds = append(cmds, domain.DrawCommand{
			Category:  domain.CategoryReligions,
			Primitive: domain.PrimitiveMarker,
			Points:    []domain.GeoPoint{d.Origin.Point},
			Style:     domain.Style{FillColor: rel.Color, Icon: rel.Icon, ClassName: className, Opacity: 1},
			Tooltip:   rel.Icon + " " + rel.Name + " (origin)",
			Popup:     religionPopup(rel, d, y),
		})

		for _, s := range domain.ActiveSpreads(d, y) {
			opacity := domain.ReligionFade.At(y - s.Date)
			cmds = append(cmds,
				domain.DrawCommand{
					Category:  domain.CategoryReligions,
					Primitive: domain.PrimitivePolyline,
					Points:    []domain.GeoPoint{d.Origin.Point, s.Point},
					Style: domain.Style{
						Color:     rel.Color,
						Weight:    2,
						Opacity:   opacity * 0.6,
						DashArray: "5, 5",
					},
					Tooltip: fmt.Sprintf("%s %s → %s (%s)", rel.Icon, rel.Name, s.Label, domain.FormatYear(s.Date)),
				},
				domain.DrawCommand{
					Category:  domain.CategoryReligions,
					Primitive: domain.PrimitiveCircleMarker,
					Points:    []domain.GeoPoint{s.Point},
					Radius:    8,
					Style: domain.Style{
						Color:       "#fff",
						FillColor:   rel.Color,
						Weight:      2,
						Opacity:     opacity,
						FillOpacity: opacity,
					},
					Tooltip: rel.Icon + " " + s.Label + " · " + s.Note,
				},
			)
		}
	}
	return cmds
}

func religionPopup(rel domain.Religion, d domain.Diffusion, y domain.Year) map[string]any {
	var spread []string
	for _, s := range domain.ActiveSpreads(d, y) {
		spread = append(spread, domain.FormatYear(s.Date)+": "+s.Label+" - "+s.Note)
	}
	return map[string]any{
		"name":         rel.Name,
		"icon":         rel.Icon,
		"founded":      domain.FormatYear(rel.Origin.Date) + ", " + rel.Origin.Region,
		"age":          fmt.Sprintf("%d years old (in %s)", rel.Age(y), domain.FormatYear(y)),
		"founder":      rel.Founder,
		"today":        rel.Adherents,
		"core_beliefs": rel.CoreBeliefs,
		"sacred_texts": rel.Texts,
		"spread":       spread,
	}
}

// Summary implements Overlay.
func (r *Religions) Summary(y domain.Year) domain.Summary {
	if len(r.religions) == 0 {
		return noData(domain.CategoryReligions)
	}
	s := domain.Summary{Category: domain.CategoryReligions}
	for _, rel := range r.religions {
		if !rel.Diffusion().Started(y) {
			continue
		}
		s.Count++
		reached := len(domain.ActiveSpreads(rel.Diffusion(), y))
		s.Details = append(s.Details, fmt.Sprintf("%s %s: %d regions", rel.Icon, rel.Name, reached))
	}
	s.Headline = fmt.Sprintf("%d religions founded", s.Count)
	return s
}
