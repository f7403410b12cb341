package overlay

import (
	"fmt"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
)

// Trade draws active trade routes, highlighting those at their peak.
type Trade struct {
	routes []domain.TradeRoute
}

// NewTrade creates the trade overlay.
func NewTrade(routes []domain.TradeRoute) *Trade {
	return &Trade{routes: routes}
}

// Category implements Overlay.
func (t *Trade) Category() domain.Category { return domain.CategoryTrade }

// Draw implements Overlay.
func (t *Trade) Draw(y domain.Year) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, r := range domain.ActiveRecords(t.routes, y) {
		step := r.Window.At(y)
		opacity := step.Opacity()

		line := domain.DrawCommand{
			Category:  domain.CategoryTrade,
			Primitive: domain.PrimitivePolyline,
			Points:    r.Path,
			Style: domain.Style{
				Color:   r.Color,
				Weight:  step.Weight(r.Width),
				Opacity: opacity,
			},
			Tooltip: r.Name,
			Popup:   tradePopup(r, step),
		}
		if r.Type == domain.RouteMaritime {
			line.Style.DashArray = "10, 5"
		}
		cmds = append(cmds, line)

		if !step.Peak || len(r.Cities) == 0 || len(r.Path) == 0 {
			continue
		}
		ends := []struct {
			at   domain.GeoPoint
			city string
		}{
			{r.Path[0], r.Cities[0]},
			{r.Path[len(r.Path)-1], r.Cities[len(r.Cities)-1]},
		}
		for _, e := range ends {
			cmds = append(cmds, domain.DrawCommand{
				Category:  domain.CategoryTrade,
				Primitive: domain.PrimitiveCircleMarker,
				Points:    []domain.GeoPoint{e.at},
				Radius:    6,
				Style: domain.Style{
					Color:       "#fff",
					FillColor:   r.Color,
					Weight:      2,
					Opacity:     opacity,
					FillOpacity: opacity * 0.8,
				},
				Tooltip: e.city,
			})
		}
	}
	return cmds
}

func tradePopup(r domain.TradeRoute, step domain.Step) map[string]any {
	kind := "🐪 Land Route"
	if r.Type == domain.RouteMaritime {
		kind = "⛵ Maritime Route"
	}
	status := "Active"
	if step.Peak {
		status = "📈 PEAK PERIOD"
	}
	cities, sources := "N/A", "N/A"
	if len(r.Cities) > 0 {
		cities = strings.Join(r.Cities, " → ")
	}
	if len(r.Sources) > 0 {
		sources = strings.Join(r.Sources, "; ")
	}
	return map[string]any{
		"id":          r.ID,
		"name":        r.Name,
		"type":        kind,
		"status":      status,
		"active":      period(r.Window.Active.Start, r.Window.Active.End),
		"peak":        period(r.Window.Peak.Start, r.Window.Peak.End),
		"goods":       strings.Join(r.Goods, " • "),
		"cities":      cities,
		"description": r.Description,
		"sources":     sources,
	}
}

// RouteStatus is one active route in a TradeSummary.
type RouteStatus struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	IsPeak bool   `json:"isPeak"`
	Color  string `json:"color"`
}

// TradeSummary digests the trade network at a year.
type TradeSummary struct {
	Total         int           `json:"total"`
	PeakCount     int           `json:"peakCount"`
	LandCount     int           `json:"landCount"`
	MaritimeCount int           `json:"maritimeCount"`
	AllGoods      []string      `json:"allGoods"`
	Routes        []RouteStatus `json:"routes"`
}

// Network summarizes the routes active at y. Goods are deduplicated in first-seen order.
func (t *Trade) Network(y domain.Year) TradeSummary {
	s := TradeSummary{AllGoods: []string{}, Routes: []RouteStatus{}}
	seen := make(map[string]struct{})
	for _, r := range domain.ActiveRecords(t.routes, y) {
		step := r.Window.At(y)
		s.Total++
		if step.Peak {
			s.PeakCount++
		}
		switch r.Type {
		case domain.RouteLand:
			s.LandCount++
		case domain.RouteMaritime:
			s.MaritimeCount++
		}
		for _, g := range r.Goods {
			if _, dup := seen[g]; !dup {
				seen[g] = struct{}{}
				s.AllGoods = append(s.AllGoods, g)
			}
		}
		s.Routes = append(s.Routes, RouteStatus{Name: r.Name, Type: r.Type, IsPeak: step.Peak, Color: r.Color})
	}
	return s
}

// Summary implements Overlay.
func (t *Trade) Summary(y domain.Year) domain.Summary {
	if len(t.routes) == 0 {
		return noData(domain.CategoryTrade)
	}
	n := t.Network(y)
	s := domain.Summary{
		Category: domain.CategoryTrade,
		Count:    n.Total,
		Headline: fmt.Sprintf("%d active routes (%d at peak)", n.Total, n.PeakCount),
	}
	if n.Total > 0 {
		s.Details = append(s.Details,
			fmt.Sprintf("%d land, %d maritime", n.LandCount, n.MaritimeCount),
			"Goods: "+strings.Join(n.AllGoods, ", "),
		)
	}
	return s
}

// FindByGoods returns every route carrying a good whose name contains q, ignoring case.
func (t *Trade) FindByGoods(q string) []domain.TradeRoute {
	var out []domain.TradeRoute
	for _, r := range t.routes {
		if r.CarriesGoods(q) {
			out = append(out, r)
		}
	}
	return out
}

// ByType returns the routes of one type.
func (t *Trade) ByType(kind string) []domain.TradeRoute {
	var out []domain.TradeRoute
	for _, r := range t.routes {
		if r.Type == kind {
			out = append(out, r)
		}
	}
	return out
}
