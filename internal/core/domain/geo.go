package domain

import (
	"fmt"
	"math"

	"go.trai.ch/zerr"
)

// GeoPoint is a WGS84 coordinate in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies within lat [-90,90] and lng [-180,180].
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Validate returns ErrInvalidCoordinates with the offending values when the point is out of range.
func (p GeoPoint) Validate() error {
	if p.Valid() {
		return nil
	}
	err := zerr.With(zerr.Wrap(ErrInvalidCoordinates, "point out of range"), "lat", p.Lat)
	return zerr.With(err, "lng", p.Lng)
}

// NearBox reports whether other lies strictly inside the square box of radiusDeg degrees around p.
func (p GeoPoint) NearBox(other GeoPoint, radiusDeg float64) bool {
	return math.Abs(p.Lat-other.Lat) < radiusDeg && math.Abs(p.Lng-other.Lng) < radiusDeg
}

// String formats the point with two decimals, e.g. "41.01, 28.98".
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.2f, %.2f", p.Lat, p.Lng)
}
