package ports

import "time"

// Lookup outcomes reported to Metrics.
const (
	LookupSourceCache   = "cache"
	LookupSourceNetwork = "network"
	LookupSourceFailed  = "failed"
)

// Metrics records operational counters.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// LookupServed counts a lookup by where it was answered from.
	LookupServed(source string)
	// NarratorLatency records the duration of one narrative call.
	NarratorLatency(provider string, d time.Duration)
	// FrameRendered records a frame with its command count and build time.
	FrameRendered(commands int, d time.Duration)
}
