package overlay

import (
	"cmp"
	"slices"

	"go.trai.ch/atlas/internal/core/domain"
)

type climateStyle struct {
	color, fill, icon, label string
}

var climateStyles = map[string]climateStyle{
	"ice-age":   {"#74b9ff", "#0984e3", "🧊", "Ice Age"},
	"cooling":   {"#81ecec", "#00cec9", "❄️", "Cooling Period"},
	"warming":   {"#ffeaa7", "#fdcb6e", "☀️", "Warming Period"},
	"drought":   {"#e17055", "#d63031", "🏜️", "Drought"},
	"volcanic":  {"#636e72", "#2d3436", "🌋", "Volcanic Winter"},
	"cold-snap": {"#a29bfe", "#6c5ce7", "🥶", "Cold Snap"},
}

func styleForClimate(kind string) climateStyle {
	if s, ok := climateStyles[kind]; ok {
		return s
	}
	return climateStyles["cooling"]
}

const (
	climateBaseRadius  = 80
	climateRadiusRange = 120
	climateGlowMeters  = 1500
	climateInnerMeters = 800
)

// Climate draws climate events as intensity-scaled circles peaking mid-event.
type Climate struct {
	periods []domain.ClimatePeriod
}

// NewClimate creates the climate overlay.
func NewClimate(periods []domain.ClimatePeriod) *Climate {
	return &Climate{periods: periods}
}

// Category implements Overlay.
func (c *Climate) Category() domain.Category { return domain.CategoryClimate }

// Draw implements Overlay.
func (c *Climate) Draw(y domain.Year) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, ev := range domain.ActiveRecords(c.periods, y) {
		style := styleForClimate(ev.Type)
		temporal := domain.SymmetricPeak(ev.TimeRange(), y)
		popup := climatePopup(ev, style)

		for _, r := range ev.AffectedRegions {
			intensity := r.Intensity * temporal
			radius := climateBaseRadius + intensity*climateRadiusRange

			cmds = append(cmds, domain.DrawCommand{
				Category:  domain.CategoryClimate,
				Primitive: domain.PrimitiveCircle,
				Points:    []domain.GeoPoint{r.Point()},
				Radius:    radius * climateGlowMeters,
				Style: domain.Style{
					Color:       style.color,
					FillColor:   style.fill,
					FillOpacity: intensity * 0.15,
				},
			})

			inner := domain.DrawCommand{
				Category:  domain.CategoryClimate,
				Primitive: domain.PrimitiveCircle,
				Points:    []domain.GeoPoint{r.Point()},
				Radius:    radius * climateInnerMeters,
				Style: domain.Style{
					Color:       style.color,
					FillColor:   style.fill,
					Opacity:     intensity * 0.6,
					FillOpacity: intensity * 0.3,
					Weight:      2,
				},
				Popup: popup,
			}
			if ev.Type == "drought" {
				inner.Style.DashArray = "10, 5"
			}
			cmds = append(cmds, inner)
		}

		if centroid, ok := domain.Centroid(ev.Points()); ok {
			cmds = append(cmds, domain.DrawCommand{
				Category:  domain.CategoryClimate,
				Primitive: domain.PrimitiveMarker,
				Points:    []domain.GeoPoint{centroid},
				Style: domain.Style{
					FillColor: style.fill,
					ClassName: "climate-marker",
					Icon:      style.icon,
					Opacity:   1,
				},
				Tooltip: style.icon + " " + ev.Name,
				Popup:   popup,
			})
		}
	}
	return cmds
}

func climatePopup(ev domain.ClimatePeriod, style climateStyle) map[string]any {
	return map[string]any{
		"name":        ev.Name,
		"type":        style.label,
		"icon":        style.icon,
		"period":      period(ev.Start, ev.End),
		"severity":    ev.Severity,
		"description": ev.Description,
		"impacts":     ev.Impacts,
	}
}

// Summary implements Overlay. The headline names the most severe active event.
func (c *Climate) Summary(y domain.Year) domain.Summary {
	if len(c.periods) == 0 {
		return noData(domain.CategoryClimate)
	}
	active := MostSevereFirst(domain.ActiveRecords(c.periods, y))
	if len(active) == 0 {
		return domain.Summary{Category: domain.CategoryClimate, Headline: "🌍 Stable Climate"}
	}
	details := make([]string, len(active))
	for i, ev := range active {
		details[i] = styleForClimate(ev.Type).icon + " " + ev.Name + " (" + ev.Severity + ")"
	}
	primary := active[0]
	return domain.Summary{
		Category: domain.CategoryClimate,
		Count:    len(active),
		Headline: styleForClimate(primary.Type).icon + " " + primary.Name,
		Details:  details,
	}
}

// MostSevereFirst returns a copy of events ordered by severity, keeping dataset order among equals.
func MostSevereFirst(events []domain.ClimatePeriod) []domain.ClimatePeriod {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b domain.ClimatePeriod) int {
		return cmp.Compare(domain.SeverityRank(a.Severity), domain.SeverityRank(b.Severity))
	})
	return out
}

// EventsNear returns every event with an affected region strictly inside the box of radiusDeg around p.
func (c *Climate) EventsNear(p domain.GeoPoint, radiusDeg float64) []domain.ClimatePeriod {
	var out []domain.ClimatePeriod
	for _, ev := range c.periods {
		if slices.ContainsFunc(ev.Points(), func(q domain.GeoPoint) bool { return p.NearBox(q, radiusDeg) }) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsByType returns the events of one climate type.
func (c *Climate) EventsByType(kind string) []domain.ClimatePeriod {
	var out []domain.ClimatePeriod
	for _, ev := range c.periods {
		if ev.Type == kind {
			out = append(out, ev)
		}
	}
	return out
}

// Collapse links a severe climate event to the societal collapses among its impacts.
type Collapse struct {
	Name    string   `json:"name"`
	Period  string   `json:"period"`
	Type    string   `json:"type"`
	Impacts []string `json:"impacts"`
}

// CollapseCorrelations lists severe and extreme events with their collapse-related impacts.
func (c *Climate) CollapseCorrelations() []Collapse {
	var out []Collapse
	for _, ev := range c.periods {
		if ev.Severity != domain.SeveritySevere && ev.Severity != domain.SeverityExtreme {
			continue
		}
		var impacts []string
		for _, i := range ev.Impacts {
			if (domain.ClimatePeriod{Impacts: []string{i}}).MentionsCollapse() {
				impacts = append(impacts, i)
			}
		}
		out = append(out, Collapse{Name: ev.Name, Period: period(ev.Start, ev.End), Type: ev.Type, Impacts: impacts})
	}
	return out
}
