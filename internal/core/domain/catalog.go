// Package domain holds the timeline datasets, temporal shapes and lookup types of the atlas.
package domain

// Catalog holds every dataset loaded at startup. It is read-only after load.
// A category that failed to load is empty and its error is kept in Failures.
type Catalog struct {
	Climate      []ClimatePeriod
	Population   []PopulationSnapshot
	Plagues      []Plague
	Religions    []Religion
	Technologies []TechNode
	TradeRoutes  []TradeRoute
	Wars         []War
	Wonders      []Wonder
	Rulers       []RulerRegion

	Failures    map[Category]error
	Fingerprint uint64
}

// Failed reports whether the category failed to load.
func (c *Catalog) Failed(cat Category) bool {
	if c == nil || c.Failures == nil {
		return false
	}
	_, ok := c.Failures[cat]
	return ok
}

// YearBounds returns the earliest start and latest finite end found across the datasets.
// It reports false when no dataset carries a usable year.
func (c *Catalog) YearBounds() (Range, bool) {
	b := bounds{}
	for _, p := range c.Climate {
		b.add(p.Start, p.End)
	}
	for _, s := range c.Population {
		b.add(s.Year, s.Year)
	}
	for _, p := range c.Plagues {
		b.add(p.TimeRange().Start, p.TimeRange().End)
	}
	for _, r := range c.Religions {
		b.add(r.Origin.Date, r.Origin.Date)
		for _, s := range r.Spread {
			b.add(s.Year, s.Year)
		}
	}
	for _, t := range c.Technologies {
		b.add(t.Origin.Date, t.Origin.Date)
	}
	for _, t := range c.TradeRoutes {
		b.add(t.Window.Active.Start, t.Window.Active.End)
	}
	for _, w := range c.Wars {
		b.add(w.Start, w.End)
	}
	return b.r, b.ok
}

type bounds struct {
	r  Range
	ok bool
}

// add widens the bounds, ignoring open sentinels.
func (b *bounds) add(start, end Year) {
	for _, y := range []Year{start, end} {
		if y == OpenStart || y == OpenEnd {
			continue
		}
		if !b.ok {
			b.r = Range{Start: y, End: y}
			b.ok = true
			continue
		}
		b.r.Start = min(b.r.Start, y)
		b.r.End = max(b.r.End, y)
	}
}
