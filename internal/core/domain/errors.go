package domain

import "go.trai.ch/zerr"

var (
	// ErrDatasetNotFound is returned when a dataset file does not exist.
	ErrDatasetNotFound = zerr.New("dataset not found")

	// ErrDatasetParse is returned when a dataset file cannot be decoded.
	ErrDatasetParse = zerr.New("failed to parse dataset")

	// ErrDatasetRead is returned when a dataset file exists but cannot be read.
	ErrDatasetRead = zerr.New("failed to read dataset")

	// ErrUnknownCategory is returned for an overlay category name that is not recognized.
	ErrUnknownCategory = zerr.New("unknown overlay category")

	// ErrDuplicateTech is returned when two technologies share an id.
	ErrDuplicateTech = zerr.New("duplicate technology id")

	// ErrCycleDetected is returned when the technology prerequisites form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTechNotFound is returned when a requested technology id is not in the graph.
	ErrTechNotFound = zerr.New("technology not found")

	// ErrRegionNotFound is returned when no ruler region matches a name.
	ErrRegionNotFound = zerr.New("region not found")

	// ErrTopicRequired is returned when a topic exploration names no topic.
	ErrTopicRequired = zerr.New("topic required")

	// ErrInvalidCoordinates is returned for a point outside the valid lat/lng range.
	ErrInvalidCoordinates = zerr.New("invalid coordinates")

	// ErrInvalidYear is returned when a year parameter cannot be parsed.
	ErrInvalidYear = zerr.New("invalid year")

	// ErrNetwork is returned when a narrative or geocoding call fails in transport or with a bad status.
	ErrNetwork = zerr.New("network error")

	// ErrRateLimited is returned when the narrative provider rejects a call with 429.
	ErrRateLimited = zerr.New("rate limited")

	// ErrEmptyResponse is returned when the narrative provider answers without text.
	ErrEmptyResponse = zerr.New("empty response")

	// ErrLookupTimeout is returned when a lookup exceeds its deadline.
	ErrLookupTimeout = zerr.New("lookup timed out")

	// ErrMissingCredentials is returned when the narrative provider has no API key.
	ErrMissingCredentials = zerr.New("missing narrator credentials")

	// ErrUnknownProvider is returned for an unsupported narrator provider name.
	ErrUnknownProvider = zerr.New("unknown narrator provider")

	// ErrCacheMiss is returned by lookup stores when a key is absent.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
