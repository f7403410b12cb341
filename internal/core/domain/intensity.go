package domain

import "math"

// SymmetricPeak maps y to sin(progress*pi) inside r.
// It is 0 at both boundaries and 1 at the midpoint. A zero-length range
// yields 1 exactly at its start. Years outside r and invalid ranges yield 0.
func SymmetricPeak(r Range, y Year) float64 {
	if !r.Contains(y) {
		return 0
	}
	if r.Start == r.End {
		return 1
	}
	return math.Sin(r.Progress(y) * math.Pi)
}

// Fade is a monotonic decay since an event, floored so old events stay faintly visible.
type Fade struct {
	Base  float64
	Floor float64
	Decay float64
}

var (
	// ReligionFade is the spread fade used by the religions overlay.
	ReligionFade = Fade{Base: 0.8, Floor: 0.3, Decay: 1000}

	// TechFade is the spread fade used by the technology overlay.
	TechFade = Fade{Base: 0.8, Floor: 0.2, Decay: 2000}
)

// At returns max(Floor, Base - elapsed/Decay) clamped to [Floor, 1].
// Negative elapsed (an event that has not happened yet) yields 0.
func (f Fade) At(elapsed Year) float64 {
	if elapsed < 0 {
		return 0
	}
	v := f.Base
	if f.Decay > 0 {
		v -= float64(elapsed) / f.Decay
	}
	return clamp(math.Max(f.Floor, v), f.Floor, 1)
}

const (
	// PeakOpacity is the stroke opacity of a record inside its peak window.
	PeakOpacity = 0.9
	// OffPeakOpacity is the stroke opacity of an active record outside its peak window.
	OffPeakOpacity = 0.5
	// PeakWeightIncrement is added to the stroke weight inside the peak window.
	PeakWeightIncrement = 1.0
)

// PeakWindow is an active range with a nested peak sub-range.
type PeakWindow struct {
	Active Range `json:"active"`
	Peak   Range `json:"peak"`
}

// Step is the binary state of a PeakWindow at a year.
type Step struct {
	Active bool `json:"active"`
	Peak   bool `json:"peak"`
}

// At evaluates the window at y. Peak is only reported while active.
func (w PeakWindow) At(y Year) Step {
	active := w.Active.Contains(y)
	return Step{Active: active, Peak: active && w.Peak.Contains(y)}
}

// Opacity returns the stroke opacity for the step.
func (s Step) Opacity() float64 {
	if s.Peak {
		return PeakOpacity
	}
	return OffPeakOpacity
}

// Weight returns base, raised by PeakWeightIncrement during the peak.
func (s Step) Weight(base float64) float64 {
	if s.Peak {
		return base + PeakWeightIncrement
	}
	return base
}
