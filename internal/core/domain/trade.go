package domain

import (
	"regexp"
	"strings"
)

var routePalettes = map[string][3]string{
	RouteLand:     {"#e74c3c", "#c0392b", "#a93226"},
	RouteMaritime: {"#3498db", "#2980b9", "#1f618d"},
}

// RouteColor picks the color of the index-th route of a type. Unknown types use the land palette.
func RouteColor(kind string, index int) string {
	p, ok := routePalettes[kind]
	if !ok {
		p = routePalettes[RouteLand]
	}
	if index < 0 {
		index = -index
	}
	return p[index%len(p)]
}

// RouteWidth returns the base stroke width of a route type.
func RouteWidth(kind string) float64 {
	if kind == RouteMaritime {
		return 3
	}
	return 4
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]`)

// RouteID derives a route id from its name: lower case, every other rune replaced by "-".
func RouteID(name string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(name), "-")
}

// SilkRoad is the single route served when the trade dataset cannot be read.
func SilkRoad() TradeRoute {
	return TradeRoute{
		ID:   "silk-road",
		Name: "Silk Road",
		Type: RouteLand,
		Window: PeakWindow{
			Active: Range{Start: -200, End: 1450},
			Peak:   Range{Start: 100, End: 250},
		},
		Color:       "#e74c3c",
		Width:       4,
		Goods:       []string{"Silk", "Spices", "Gold", "Jade", "Horses", "Paper", "Gunpowder"},
		Cities:      []string{"Chang'an", "Kashgar", "Samarkand", "Baghdad", "Constantinople"},
		Description: "Connected East and West for 1,600 years.",
		Sources:     []string{"Hansen, Valerie. The Silk Road: A New History (2012)"},
		Path: []GeoPoint{
			{34.27, 108.95}, {36.06, 103.83}, {39.47, 75.99},
			{39.65, 66.96}, {37.58, 61.84}, {35.69, 51.39},
			{33.31, 44.37}, {36.20, 37.16}, {41.01, 28.98},
		},
	}
}
