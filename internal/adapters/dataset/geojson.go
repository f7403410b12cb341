package dataset

import (
	"encoding/json"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

type featureCollection struct {
	Features []routeFeature `json:"features"`
}

type routeFeature struct {
	Properties routeProperties `json:"properties"`
	Geometry   struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
}

type routeProperties struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	ActivePeriod domain.Range `json:"active_period"`
	PeakPeriod   *struct {
		Start *domain.Year `json:"start"`
		End   *domain.Year `json:"end"`
	} `json:"peak_period"`
	Goods       []string `json:"goods"`
	KeyCities   []string `json:"key_cities"`
	Description string   `json:"description"`
	Sources     []string `json:"sources"`
}

// DecodeTradeRoutes converts a GeoJSON FeatureCollection of LineStrings into trade routes.
// Coordinates are [lng, lat] pairs. A missing peak period, or a missing bound of it,
// falls back to the active period. Colors are assigned by type and feature index.
func DecodeTradeRoutes(data []byte) ([]domain.TradeRoute, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, zerr.Wrap(domain.ErrDatasetParse, err.Error())
	}
	if fc.Features == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetParse, "missing top-level key"), "key", "features")
	}

	routes := make([]domain.TradeRoute, 0, len(fc.Features))
	for i, f := range fc.Features {
		p := f.Properties
		if f.Geometry.Type != "LineString" {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrDatasetParse, "unsupported geometry"),
				"route", p.Name), "geometry", f.Geometry.Type)
		}
		path := make([]domain.GeoPoint, 0, len(f.Geometry.Coordinates))
		for _, c := range f.Geometry.Coordinates {
			if len(c) < 2 {
				return nil, zerr.With(zerr.Wrap(domain.ErrDatasetParse, "short coordinate"), "route", p.Name)
			}
			path = append(path, domain.GeoPoint{Lat: c[1], Lng: c[0]})
		}

		peak := p.ActivePeriod
		if p.PeakPeriod != nil {
			if p.PeakPeriod.Start != nil {
				peak.Start = *p.PeakPeriod.Start
			}
			if p.PeakPeriod.End != nil {
				peak.End = *p.PeakPeriod.End
			}
		}

		routes = append(routes, domain.TradeRoute{
			ID:          domain.RouteID(p.Name),
			Name:        p.Name,
			Type:        p.Type,
			Window:      domain.PeakWindow{Active: p.ActivePeriod, Peak: peak},
			Color:       domain.RouteColor(p.Type, i),
			Width:       domain.RouteWidth(p.Type),
			Goods:       p.Goods,
			Cities:      p.KeyCities,
			Description: p.Description,
			Sources:     p.Sources,
			Path:        path,
		})
	}
	return routes, nil
}
