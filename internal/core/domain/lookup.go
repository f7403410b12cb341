package domain

import (
	"fmt"
	"math"
)

// QueryKey identifies a location lookup: coordinates rounded to two decimals and a year bucket.
// Coordinates are stored in hundredths of a degree so keys compare exactly.
type QueryKey struct {
	Lat    int32 `json:"lat"`
	Lng    int32 `json:"lng"`
	Bucket Year  `json:"bucket"`
}

// NewQueryKey quantizes p and y into a lookup key.
func NewQueryKey(p GeoPoint, y Year, bucketSize int) QueryKey {
	return QueryKey{
		Lat:    int32(math.Round(p.Lat * 100)),
		Lng:    int32(math.Round(p.Lng * 100)),
		Bucket: y.Bucket(bucketSize),
	}
}

// Point returns the rounded coordinates of the key.
func (k QueryKey) Point() GeoPoint {
	return GeoPoint{Lat: float64(k.Lat) / 100, Lng: float64(k.Lng) / 100}
}

// String renders the key as "lat,lng,bucket", e.g. "41.01,28.98,1450".
func (k QueryKey) String() string {
	p := k.Point()
	return fmt.Sprintf("%.2f,%.2f,%d", p.Lat, p.Lng, int(k.Bucket))
}

// LookupEntry is a cached narrative for a key.
type LookupEntry struct {
	PlaceName string `json:"placeName"`
	Narrative string `json:"narrative"`
	Year      Year   `json:"year"`
}

// LookupState is the state of a location lookup session.
type LookupState int

const (
	// LookupIdle means no lookup is pending and the panel is hidden.
	LookupIdle LookupState = iota
	// LookupPendingDebounce means a trigger arrived and the debounce timer is running.
	LookupPendingDebounce
	// LookupInFlight means the narrative call has been issued.
	LookupInFlight
	// LookupResolved means the current key has a narrative.
	LookupResolved
	// LookupFailed means the last call failed; nothing was cached.
	LookupFailed
)

// String returns the name of the state.
func (s LookupState) String() string {
	switch s {
	case LookupIdle:
		return "idle"
	case LookupPendingDebounce:
		return "pending"
	case LookupInFlight:
		return "in-flight"
	case LookupResolved:
		return "resolved"
	case LookupFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LookupUpdate is published by a lookup session on every state change.
// HTML is the formatted narrative and is only set when State is LookupResolved.
type LookupUpdate struct {
	State LookupState `json:"state"`
	Key   QueryKey    `json:"key"`
	Entry LookupEntry `json:"entry"`
	HTML  string      `json:"html,omitempty"`
	Err   error       `json:"-"`
}

// Label returns the panel heading, e.g. "Istanbul, Turkey • 1450 CE".
func (u LookupUpdate) Label() string {
	return u.Entry.PlaceName + " • " + FormatYear(u.Entry.Year)
}
