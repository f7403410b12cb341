package overlay

import (
	"fmt"

	"go.trai.ch/atlas/internal/core/domain"
)

const (
	plagueActiveMeters = 300_000
	plaguePastMeters   = 150_000
	plaguePulseMeters  = 400_000
)

// Plagues draws outbreaks. Active outbreaks pulse; finished ones stay faintly visible.
type Plagues struct {
	plagues []domain.Plague
}

// NewPlagues creates the plagues overlay.
func NewPlagues(plagues []domain.Plague) *Plagues {
	return &Plagues{plagues: plagues}
}

// Category implements Overlay.
func (p *Plagues) Category() domain.Category { return domain.CategoryPlagues }

// Draw implements Overlay.
func (p *Plagues) Draw(y domain.Year) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, pl := range p.plagues {
		phase := pl.TimeRange().PhaseAt(y)
		if phase != domain.PhaseActive && phase != domain.PhasePast {
			continue
		}
		active := phase == domain.PhaseActive

		tooltip := pl.Icon + " " + pl.Name
		className := "plague-marker"
		if active {
			tooltip += " (ACTIVE)"
			className += " active"
		}
		cmds = append(cmds, domain.DrawCommand{
			Category:  domain.CategoryPlagues,
			Primitive: domain.PrimitiveMarker,
			Points:    []domain.GeoPoint{point(pl.Origin.Lat, pl.Origin.Lng)},
			Style:     domain.Style{FillColor: pl.Color, Icon: pl.Icon, ClassName: className, Opacity: 1},
			Tooltip:   tooltip,
			Popup:     plaguePopup(pl, active),
		})

		for _, r := range pl.SpreadRegions {
			spread := domain.DrawCommand{
				Category:  domain.CategoryPlagues,
				Primitive: domain.PrimitiveCircle,
				Points:    []domain.GeoPoint{point(r.Lat, r.Lng)},
				Radius:    plaguePastMeters,
				Style: domain.Style{
					Color:       pl.Color,
					FillColor:   pl.Color,
					Weight:      1,
					Opacity:     0.3,
					FillOpacity: 0.15,
				},
				Tooltip: fmt.Sprintf("%s %s · %s: %s", pl.Icon, pl.Name, r.Region, r.Deaths),
			}
			if active {
				spread.Radius = plagueActiveMeters
				spread.Style.Weight = 2
				spread.Style.Opacity = 0.6
				spread.Style.FillOpacity = 0.4
			}
			cmds = append(cmds, spread)
		}

		if !active {
			continue
		}
		for _, r := range pl.SpreadRegions {
			cmds = append(cmds, domain.DrawCommand{
				Category:  domain.CategoryPlagues,
				Primitive: domain.PrimitiveCircle,
				Points:    []domain.GeoPoint{point(r.Lat, r.Lng)},
				Radius:    plaguePulseMeters,
				Style: domain.Style{
					Color:       pl.Color,
					FillColor:   pl.Color,
					FillOpacity: 0.15,
					ClassName:   "plague-pulse",
				},
			})
		}
	}
	return cmds
}

func plaguePopup(pl domain.Plague, active bool) map[string]any {
	end := "Ongoing"
	if pl.End != nil {
		end = domain.FormatYear(*pl.End)
	}
	status := "📜 Historical"
	if active {
		status = "☠️ PANDEMIC ACTIVE"
	}
	regions := make([]string, len(pl.SpreadRegions))
	for i, r := range pl.SpreadRegions {
		regions[i] = r.Region + ": " + r.Deaths
	}
	return map[string]any{
		"name":              pl.Name,
		"icon":              pl.Icon,
		"status":            status,
		"period":            domain.FormatYear(pl.Start) + " – " + end,
		"pathogen":          pl.Pathogen,
		"origin":            pl.Origin.Region,
		"deaths":            pl.Deaths,
		"mortality":         pl.MortalityRate,
		"description":       pl.Description,
		"affected_regions":  regions,
		"historical_impact": pl.HistoricalImpact,
		"sources":           pl.Sources,
	}
}

// Active returns the outbreaks in progress at y.
func (p *Plagues) Active(y domain.Year) []domain.Plague {
	return domain.ActiveRecords(p.plagues, y)
}

// Summary implements Overlay.
func (p *Plagues) Summary(y domain.Year) domain.Summary {
	if len(p.plagues) == 0 {
		return noData(domain.CategoryPlagues)
	}
	active := p.Active(y)
	s := domain.Summary{Category: domain.CategoryPlagues, Count: len(active)}
	switch len(active) {
	case 0:
		s.Headline = "No active pandemics"
	case 1:
		s.Headline = "1 active pandemic"
	default:
		s.Headline = fmt.Sprintf("%d active pandemics", len(active))
	}
	for _, pl := range active {
		s.Details = append(s.Details, pl.Icon+" "+pl.Name+" ("+pl.Deaths+")")
	}
	return s
}
