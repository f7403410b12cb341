package overlay

import (
	"fmt"

	"go.trai.ch/atlas/internal/core/domain"
)

type wonderStyle struct {
	color, label string
}

var wonderStyles = map[string]wonderStyle{
	"ancient": {"#FFD700", "Ancient Wonder"},
	"modern":  {"#4169E1", "New 7 Wonder"},
	"natural": {"#228B22", "Natural Wonder"},
	"notable": {"#9932CC", "Notable Monument"},
}

func styleForWonder(category string) wonderStyle {
	if s, ok := wonderStyles[category]; ok {
		return s
	}
	return wonderStyles["notable"]
}

// Wonders draws monuments from their construction on, as ruins once destroyed.
type Wonders struct {
	wonders []domain.Wonder
}

// NewWonders creates the wonders overlay.
func NewWonders(wonders []domain.Wonder) *Wonders {
	return &Wonders{wonders: wonders}
}

// Category implements Overlay.
func (w *Wonders) Category() domain.Category { return domain.CategoryWonders }

// Draw implements Overlay.
func (w *Wonders) Draw(y domain.Year) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, wd := range domain.ActiveRecords(w.wonders, y) {
		style := styleForWonder(wd.Category)
		ruined := wd.Ruined(y)

		cmd := domain.DrawCommand{
			Category:  domain.CategoryWonders,
			Primitive: domain.PrimitiveMarker,
			Points:    []domain.GeoPoint{point(wd.Lat, wd.Lng)},
			Style: domain.Style{
				FillColor: style.color,
				Icon:      wd.Icon,
				ClassName: "wonder-marker",
				Opacity:   1,
			},
			Tooltip: wd.Icon + " " + wd.Name,
			Popup:   wonderPopup(wd, style, ruined),
		}
		if ruined {
			cmd.Style.ClassName += " destroyed"
			cmd.Style.Opacity = 0.6
			cmd.Tooltip += " (ruins)"
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func wonderPopup(wd domain.Wonder, style wonderStyle, ruined bool) map[string]any {
	p := map[string]any{
		"name":        wd.Name,
		"icon":        wd.Icon,
		"kind":        style.label,
		"status":      wd.Status,
		"ruined":      ruined,
		"location":    wd.Location,
		"description": wd.Description,
	}
	if wd.Built != nil {
		p["built"] = domain.FormatYear(*wd.Built)
	}
	if wd.Destroyed != nil {
		p["destroyed"] = domain.FormatYear(*wd.Destroyed)
	}
	if wd.Builder != "" {
		p["builder"] = wd.Builder
	}
	return p
}

// Summary implements Overlay.
func (w *Wonders) Summary(y domain.Year) domain.Summary {
	if len(w.wonders) == 0 {
		return noData(domain.CategoryWonders)
	}
	visible := domain.ActiveRecords(w.wonders, y)
	ruins := 0
	for _, wd := range visible {
		if wd.Ruined(y) {
			ruins++
		}
	}
	return domain.Summary{
		Category: domain.CategoryWonders,
		Count:    len(visible),
		Headline: fmt.Sprintf("%d wonders standing, %d in ruins", len(visible)-ruins, ruins),
	}
}
