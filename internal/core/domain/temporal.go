package domain

// Shape is the closed set of temporal shapes a record can take.
// It is implemented only by Range, Diffusion and SnapshotSeries.
type Shape interface {
	isShape()
}

// Range is an inclusive [Start, End] window.
// A range with End < Start is invalid and never active.
type Range struct {
	Start Year `json:"start"`
	End   Year `json:"end"`
}

// OpenRange returns a range that starts at start and never ends.
func OpenRange(start Year) Range {
	return Range{Start: start, End: OpenEnd}
}

func (Range) isShape() {}

// Valid reports whether Start <= End.
func (r Range) Valid() bool {
	return r.Start <= r.End
}

// Contains reports whether y lies inside the range, boundaries included.
func (r Range) Contains(y Year) bool {
	return r.Valid() && r.Start <= y && y <= r.End
}

// Progress returns the normalized position of y within the range, clamped to [0,1].
// Zero-length and invalid ranges report 0.
func (r Range) Progress(y Year) float64 {
	if r.End <= r.Start {
		return 0
	}
	p := float64(y-r.Start) / float64(r.End-r.Start)
	return clamp(p, 0, 1)
}

// Phase describes where a query year sits relative to a range.
type Phase int

const (
	// PhaseNever is reported for invalid ranges.
	PhaseNever Phase = iota
	// PhaseFuture means the range has not started yet.
	PhaseFuture
	// PhaseActive means the year lies inside the range.
	PhaseActive
	// PhasePast means the range has ended.
	PhasePast
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFuture:
		return "future"
	case PhaseActive:
		return "active"
	case PhasePast:
		return "past"
	default:
		return "never"
	}
}

// PhaseAt classifies y against the range.
func (r Range) PhaseAt(y Year) Phase {
	switch {
	case !r.Valid():
		return PhaseNever
	case y < r.Start:
		return PhaseFuture
	case y > r.End:
		return PhasePast
	default:
		return PhaseActive
	}
}

// Ranged is implemented by records carrying a time range.
type Ranged interface {
	TimeRange() Range
}

// ActiveRecords returns the records whose range contains y, preserving order.
// An empty input yields an empty, non-nil result.
func ActiveRecords[T Ranged](records []T, y Year) []T {
	active := make([]T, 0, len(records))
	for _, r := range records {
		if r.TimeRange().Contains(y) {
			active = append(active, r)
		}
	}
	return active
}

// Spread is a single dated diffusion event.
type Spread struct {
	Point GeoPoint `json:"point"`
	Date  Year     `json:"date"`
	Label string   `json:"label,omitempty"`
	Note  string   `json:"note,omitempty"`
}

// Diffusion is an origin event plus independently dated spread events.
type Diffusion struct {
	Origin  Spread   `json:"origin"`
	Spreads []Spread `json:"spreads,omitempty"`
}

func (Diffusion) isShape() {}

// Started reports whether the origin event has happened by y.
func (d Diffusion) Started(y Year) bool {
	return d.Origin.Date <= y
}

// ActiveSpreads returns the spread events dated at or before y, in declaration order.
func ActiveSpreads(d Diffusion, y Year) []Spread {
	visible := make([]Spread, 0, len(d.Spreads))
	for _, s := range d.Spreads {
		if s.Date <= y {
			visible = append(visible, s)
		}
	}
	return visible
}

// Dated is implemented by snapshot records.
type Dated interface {
	SnapshotYear() Year
}

// SnapshotSeries is the ordered list of snapshot years of a series.
type SnapshotSeries struct {
	Years []Year `json:"years"`
}

func (SnapshotSeries) isShape() {}

// SeriesOf extracts the snapshot years of series.
func SeriesOf[T Dated](series []T) SnapshotSeries {
	years := make([]Year, len(series))
	for i, s := range series {
		years[i] = s.SnapshotYear()
	}
	return SnapshotSeries{Years: years}
}

// Nearest returns the index of the snapshot closest to y, or -1 for an empty series.
// The first strict minimum wins: on a tie the lower index is kept.
func (s SnapshotSeries) Nearest(y Year) int {
	best := -1
	var bestDist uint64
	for i, sy := range s.Years {
		d := yearDistance(y, sy)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// NearestSnapshot returns the snapshot closest to y with the first-minimum tie rule.
// It reports false for an empty series.
func NearestSnapshot[T Dated](series []T, y Year) (T, bool) {
	idx := SeriesOf(series).Nearest(y)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return series[idx], true
}

// Activity is the evaluation of a Shape at a query year.
type Activity struct {
	// Active reports whether the shape contributes anything at the year.
	Active bool
	// Progress is the normalized position inside a range; 1 for started diffusions.
	Progress float64
	// Elapsed is the signed distance from the shape's reference date to the year.
	Elapsed Year
	// Index is the selected snapshot for series, -1 otherwise.
	Index int
}

// Evaluate dispatches on the concrete shape and reports its activity at y.
func Evaluate(s Shape, y Year) Activity {
	switch v := s.(type) {
	case Range:
		if !v.Contains(y) {
			return Activity{Index: -1}
		}
		return Activity{Active: true, Progress: v.Progress(y), Elapsed: y - v.Start, Index: -1}
	case Diffusion:
		if !v.Started(y) {
			return Activity{Index: -1}
		}
		return Activity{Active: true, Progress: 1, Elapsed: y - v.Origin.Date, Index: -1}
	case SnapshotSeries:
		idx := v.Nearest(y)
		if idx < 0 {
			return Activity{Index: -1}
		}
		return Activity{Active: true, Progress: 1, Elapsed: y - v.Years[idx], Index: idx}
	default:
		return Activity{Index: -1}
	}
}

// LatestAtOrBefore returns the record with the latest year at or before y.
// When y precedes every record the earliest one is returned. Ties keep the first record.
// It reports false for an empty series.
func LatestAtOrBefore[T Dated](series []T, y Year) (T, bool) {
	var zero T
	if len(series) == 0 {
		return zero, false
	}
	latest, earliest := -1, 0
	for i, s := range series {
		sy := s.SnapshotYear()
		if sy < series[earliest].SnapshotYear() {
			earliest = i
		}
		if sy <= y && (latest < 0 || sy > series[latest].SnapshotYear()) {
			latest = i
		}
	}
	if latest < 0 {
		return series[earliest], true
	}
	return series[latest], true
}

// yearDistance is |a-b| without overflow for any pair of years.
func yearDistance(a, b Year) uint64 {
	if a >= b {
		return uint64(a) - uint64(b) //nolint:gosec // wraps to the exact difference
	}
	return uint64(b) - uint64(a) //nolint:gosec // wraps to the exact difference
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
