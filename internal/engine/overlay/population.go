package overlay

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"go.trai.ch/atlas/internal/core/domain"
)

type densityStyle struct {
	fill    string
	opacity float64
	label   string
}

var densityStyles = map[string]densityStyle{
	"low":    {"#3498db", 0.3, "🟢 Low (sparse settlement)"},
	"medium": {"#f39c12", 0.5, "🟡 Medium (agricultural)"},
	"high":   {"#e74c3c", 0.7, "🔴 High (urban centers)"},
}

func styleForDensity(d string) densityStyle {
	if s, ok := densityStyles[d]; ok {
		return s
	}
	return densityStyles["medium"]
}

const populationGlow = 8

// Population draws the nearest population snapshot as proportional circles.
type Population struct {
	snapshots []domain.PopulationSnapshot
}

// NewPopulation creates the population overlay.
func NewPopulation(snapshots []domain.PopulationSnapshot) *Population {
	return &Population{snapshots: snapshots}
}

// Category implements Overlay.
func (p *Population) Category() domain.Category { return domain.CategoryPopulation }

// Draw implements Overlay.
func (p *Population) Draw(y domain.Year) []domain.DrawCommand {
	snap, ok := domain.NearestSnapshot(p.snapshots, y)
	if !ok {
		return nil
	}

	var cmds []domain.DrawCommand
	for _, r := range snap.Regions {
		radius := domain.ProportionalRadius(r.Population, snap.Total, domain.PopulationRadius)
		style := styleForDensity(r.Density)
		share := WorldShare(r.Population, snap.Total)

		cmds = append(cmds, domain.DrawCommand{
			Category:  domain.CategoryPopulation,
			Primitive: domain.PrimitiveCircleMarker,
			Points:    []domain.GeoPoint{r.Point()},
			Radius:    radius,
			Style: domain.Style{
				Color:       style.fill,
				FillColor:   style.fill,
				Weight:      1,
				Opacity:     style.opacity + 0.2,
				FillOpacity: style.opacity,
			},
			Tooltip: fmt.Sprintf("%s · 👥 %s · 📊 %s%% of world · 📈 Density: %s", r.Name, FormatPopulation(r.Population), share, r.Density),
			Popup: map[string]any{
				"name":        r.Name,
				"population":  FormatPopulation(r.Population),
				"share":       share + "%",
				"density":     style.label,
				"year":        domain.FormatYear(snap.Year),
				"world_total": FormatPopulation(snap.Total),
			},
		})

		if r.Density == "high" {
			cmds = append(cmds, domain.DrawCommand{
				Category:  domain.CategoryPopulation,
				Primitive: domain.PrimitiveCircleMarker,
				Points:    []domain.GeoPoint{r.Point()},
				Radius:    radius + populationGlow,
				Style: domain.Style{
					Color:       style.fill,
					FillColor:   style.fill,
					FillOpacity: 0.15,
				},
			})
		}
	}
	return cmds
}

// Summary implements Overlay.
func (p *Population) Summary(y domain.Year) domain.Summary {
	snap, ok := domain.NearestSnapshot(p.snapshots, y)
	if !ok {
		return noData(domain.CategoryPopulation)
	}
	s := domain.Summary{
		Category: domain.CategoryPopulation,
		Count:    len(snap.Regions),
		Headline: fmt.Sprintf("World population %s (%s)", FormatPopulation(snap.Total), domain.FormatYear(snap.Year)),
	}
	if snap.Notes != "" {
		s.Details = append(s.Details, snap.Notes)
	}
	for _, r := range p.TopRegions(y, 3) {
		s.Details = append(s.Details, fmt.Sprintf("%s: %s (%s)", r.Name, r.Population, r.Percent))
	}
	return s
}

// FormatPopulation renders a count given in thousands, e.g. "1.50 billion" or "300.0 million".
func FormatPopulation(thousands float64) string {
	switch {
	case thousands >= 1_000_000:
		return strconv.FormatFloat(thousands/1_000_000, 'f', 2, 64) + " billion"
	case thousands >= 1_000:
		return strconv.FormatFloat(thousands/1_000, 'f', 1, 64) + " million"
	default:
		return strconv.FormatFloat(thousands, 'f', -1, 64) + " thousand"
	}
}

// WorldShare formats value/total as a percentage with one decimal.
func WorldShare(value, total float64) string {
	if total <= 0 {
		return "0.0"
	}
	return strconv.FormatFloat(value/total*100, 'f', 1, 64)
}

// Growth is the population change between two snapshots.
type Growth struct {
	From        domain.Year `json:"from"`
	To          domain.Year `json:"to"`
	StartPop    float64     `json:"start_pop"`
	EndPop      float64     `json:"end_pop"`
	TotalGrowth string      `json:"total_growth"`
	AnnualRate  string      `json:"annual_rate"`
}

// GrowthRate compares the snapshots nearest to from and to.
// It reports false when there is no data or both years resolve to the same snapshot.
func (p *Population) GrowthRate(from, to domain.Year) (Growth, bool) {
	a, ok := domain.NearestSnapshot(p.snapshots, from)
	if !ok {
		return Growth{}, false
	}
	b, _ := domain.NearestSnapshot(p.snapshots, to)
	years := b.Year - a.Year
	if years == 0 || a.Total <= 0 {
		return Growth{}, false
	}
	growth := b.Total / a.Total
	annual := math.Pow(growth, 1/float64(years)) - 1
	return Growth{
		From:        a.Year,
		To:          b.Year,
		StartPop:    a.Total,
		EndPop:      b.Total,
		TotalGrowth: strconv.FormatFloat((growth-1)*100, 'f', 1, 64) + "%",
		AnnualRate:  strconv.FormatFloat(annual*100, 'f', 3, 64) + "%",
	}, true
}

// RegionRank is a formatted entry of TopRegions.
type RegionRank struct {
	Name       string `json:"name"`
	Population string `json:"population"`
	Percent    string `json:"percent"`
}

// TopRegions returns the most populous regions of the snapshot nearest to y.
func (p *Population) TopRegions(y domain.Year, limit int) []RegionRank {
	snap, ok := domain.NearestSnapshot(p.snapshots, y)
	if !ok {
		return nil
	}
	regions := slices.Clone(snap.Regions)
	slices.SortStableFunc(regions, func(a, b domain.PopulationRegion) int {
		return cmp.Compare(b.Population, a.Population)
	})
	if limit >= 0 && len(regions) > limit {
		regions = regions[:limit]
	}
	out := make([]RegionRank, len(regions))
	for i, r := range regions {
		out[i] = RegionRank{
			Name:       r.Name,
			Population: FormatPopulation(r.Population),
			Percent:    WorldShare(r.Population, snap.Total) + "%",
		}
	}
	return out
}
