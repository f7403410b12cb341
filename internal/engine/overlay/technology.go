package overlay

import (
	"fmt"

	"go.trai.ch/atlas/internal/core/domain"
)

// TechNewWindow is how long after its invention a technology is drawn highlighted.
const TechNewWindow domain.Year = 500

const techDefaultColor = "#666"

var techColors = map[string]string{
	"fundamental":   "#e74c3c",
	"metallurgy":    "#f39c12",
	"crafts":        "#9b59b6",
	"communication": "#3498db",
	"transport":     "#1abc9c",
	"navigation":    "#16a085",
	"military":      "#c0392b",
	"science":       "#2980b9",
	"medicine":      "#27ae60",
	"power":         "#d35400",
	"electronics":   "#8e44ad",
}

var techIcons = map[string]string{
	"fundamental":   "🔥",
	"metallurgy":    "⚒️",
	"crafts":        "🏺",
	"communication": "📜",
	"transport":     "🛞",
	"navigation":    "🧭",
	"military":      "⚔️",
	"science":       "🔬",
	"medicine":      "💊",
	"power":         "⚡",
	"electronics":   "💻",
}

// TechColor returns the marker color of a technology category.
func TechColor(category string) string {
	if c, ok := techColors[category]; ok {
		return c
	}
	return techDefaultColor
}

// TechIcon returns the icon of a technology category.
func TechIcon(category string) string {
	if i, ok := techIcons[category]; ok {
		return i
	}
	return "💡"
}

// Technology draws invented technologies and their spread.
type Technology struct {
	graph *domain.TechGraph
}

// NewTechnology creates the technology overlay. A nil graph draws nothing.
func NewTechnology(g *domain.TechGraph) *Technology {
	return &Technology{graph: g}
}

// Category implements Overlay.
func (t *Technology) Category() domain.Category { return domain.CategoryTechnology }

// Draw implements Overlay.
func (t *Technology) Draw(y domain.Year) []domain.DrawCommand {
	if t.graph == nil {
		return nil
	}
	var cmds []domain.DrawCommand
	for _, n := range t.graph.Available(y) {
		cmds = append(cmds, techMarkers(n, y)...)
		cmds = append(cmds, techSpread(n, y)...)
	}
	return cmds
}

func techMarkers(n domain.TechNode, y domain.Year) []domain.DrawCommand {
	color := TechColor(n.Category)
	origin := point(n.Origin.Lat, n.Origin.Lng)
	isNew := y-n.Origin.Date < TechNewWindow

	size, fill := 8.0, 0.6
	if isNew {
		size, fill = 12, 0.9
	}
	cmds := []domain.DrawCommand{{
		Category:  domain.CategoryTechnology,
		Primitive: domain.PrimitiveCircleMarker,
		Points:    []domain.GeoPoint{origin},
		Radius:    size,
		Style: domain.Style{
			Color:       "#fff",
			FillColor:   color,
			Weight:      2,
			Opacity:     1,
			FillOpacity: fill,
		},
		Tooltip: n.Name + " · " + domain.FormatYear(n.Origin.Date),
		Popup:   map[string]any{"tech_id": n.ID},
	}}
	if isNew {
		cmds = append(cmds, domain.DrawCommand{
			Category:  domain.CategoryTechnology,
			Primitive: domain.PrimitiveCircleMarker,
			Points:    []domain.GeoPoint{origin},
			Radius:    size + 5,
			Style: domain.Style{
				Color:       color,
				FillColor:   color,
				Weight:      2,
				Opacity:     0.5,
				FillOpacity: 0.2,
				ClassName:   "tech-pulse",
			},
		})
	}
	return cmds
}

func techSpread(n domain.TechNode, y domain.Year) []domain.DrawCommand {
	color := TechColor(n.Category)
	d := n.Diffusion()
	var cmds []domain.DrawCommand
	for _, s := range domain.ActiveSpreads(d, y) {
		opacity := domain.TechFade.At(y - s.Date)
		cmds = append(cmds,
			domain.DrawCommand{
				Category:  domain.CategoryTechnology,
				Primitive: domain.PrimitivePolyline,
				Points:    []domain.GeoPoint{d.Origin.Point, s.Point},
				Style:     domain.Style{Color: color, Weight: 2, Opacity: opacity, DashArray: "5, 5"},
				Tooltip:   fmt.Sprintf("%s → %s · %s", n.Name, s.Label, domain.FormatYear(s.Date)),
			},
			domain.DrawCommand{
				Category:  domain.CategoryTechnology,
				Primitive: domain.PrimitiveCircleMarker,
				Points:    []domain.GeoPoint{s.Point},
				Radius:    5,
				Style: domain.Style{
					Color:       "#fff",
					FillColor:   color,
					Weight:      1,
					Opacity:     opacity,
					FillOpacity: opacity * 0.8,
				},
				Tooltip: s.Label,
			},
		)
	}
	return cmds
}

// Summary implements Overlay.
func (t *Technology) Summary(y domain.Year) domain.Summary {
	if t.graph == nil || t.graph.Len() == 0 {
		return noData(domain.CategoryTechnology)
	}
	available := t.graph.Available(y)
	s := domain.Summary{
		Category: domain.CategoryTechnology,
		Count:    len(available),
		Headline: fmt.Sprintf("%d of %d technologies invented", len(available), t.graph.Len()),
	}
	for _, n := range available {
		if y-n.Origin.Date < TechNewWindow {
			s.Details = append(s.Details, TechIcon(n.Category)+" "+n.Name+" ("+domain.FormatYear(n.Origin.Date)+")")
		}
	}
	return s
}

// TechDetail is the tech tree view of one technology at a query year.
type TechDetail struct {
	Node          domain.TechNode    `json:"node"`
	Color         string             `json:"color"`
	Icon          string             `json:"icon"`
	Available     bool               `json:"available"`
	Prerequisites []domain.TechRef   `json:"prerequisites"`
	Unlocks       []domain.Unlock    `json:"unlocks"`
	Independent   []domain.Invention `json:"independent_inventions,omitempty"`
}

// Detail resolves the neighbourhood of id in g. Independent inventions are only
// reported when the technology arose in more than one place.
func Detail(g *domain.TechGraph, id string, y domain.Year) (TechDetail, bool) {
	if g == nil {
		return TechDetail{}, false
	}
	n, ok := g.Node(id)
	if !ok {
		return TechDetail{}, false
	}
	d := TechDetail{
		Node:          n,
		Color:         TechColor(n.Category),
		Icon:          TechIcon(n.Category),
		Available:     g.IsAvailable(id, y),
		Prerequisites: g.PrerequisitesOf(id),
		Unlocks:       g.UnlocksOf(id, y),
	}
	if len(n.IndependentInventions) > 1 {
		d.Independent = n.IndependentInventions
	}
	return d, true
}
