package domain

import "math"

// Centroid returns the arithmetic mean of latitudes and of longitudes.
// It is a planar approximation: fine at city or region scale, not geodesic
// at continental scale, and it does not handle the antimeridian.
// It reports false for an empty input.
func Centroid(points []GeoPoint) (GeoPoint, bool) {
	if len(points) == 0 {
		return GeoPoint{}, false
	}
	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}
	n := float64(len(points))
	return GeoPoint{Lat: sumLat / n, Lng: sumLng / n}, true
}

// RadiusScale bounds a proportional radius.
type RadiusScale struct {
	Min   float64
	Max   float64
	Scale float64
}

// PopulationRadius is the pixel scale used for population circles.
var PopulationRadius = RadiusScale{Min: 8, Max: 50, Scale: 150}

// ProportionalRadius returns clamp(sqrt(value/total)*Scale, Min, Max).
// Square-root scaling keeps the drawn area, not the radius, proportional to value.
// A non-positive total or value yields Min.
func ProportionalRadius(value, total float64, s RadiusScale) float64 {
	if total <= 0 || value <= 0 || math.IsNaN(value) || math.IsNaN(total) {
		return s.Min
	}
	return clamp(math.Sqrt(value/total)*s.Scale, s.Min, s.Max)
}
