package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Year is a signed calendar year. Negative values are BCE.
// No year-zero semantics are enforced beyond the sign.
type Year int

const (
	// OpenStart is the lower bound used for records without a declared start.
	OpenStart Year = math.MinInt32

	// OpenEnd is the upper bound used for records without a declared end.
	// Records ending at OpenEnd stay active indefinitely once started.
	OpenEnd Year = math.MaxInt32

	// DefaultBucketSize is the year quantization used for lookup cache keys.
	DefaultBucketSize = 50
)

// String returns the display label of the year.
func (y Year) String() string {
	return FormatYear(y)
}

// FormatYear renders y as "N BCE" for negative years and "N CE" otherwise.
func FormatYear(y Year) string {
	if y < 0 {
		return fmt.Sprintf("%d BCE", -int(y))
	}
	return fmt.Sprintf("%d CE", int(y))
}

// Bucket quantizes y to the nearest multiple of size.
// Halves round toward positive infinity, so Bucket(25, 50) is 50 and Bucket(-25, 50) is 0.
func (y Year) Bucket(size int) Year {
	if size <= 0 {
		return y
	}
	return Year(math.Floor(float64(y)/float64(size)+0.5)) * Year(size)
}

// Clamp limits y to the inclusive range [lo, hi].
func (y Year) Clamp(lo, hi Year) Year {
	if lo > hi {
		return y
	}
	return min(max(y, lo), hi)
}

// ParseYear parses a signed year. A trailing "BCE" or "BC" negates it and "CE" or "AD" is accepted.
// Years outside [OpenStart, OpenEnd] are rejected.
func ParseYear(s string) (Year, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	sign := 1
	for _, suffix := range []string{"BCE", "BC"} {
		if rest, ok := strings.CutSuffix(raw, suffix); ok {
			raw, sign = strings.TrimSpace(rest), -1
			break
		}
	}
	if sign > 0 {
		for _, suffix := range []string{"CE", "AD"} {
			if rest, ok := strings.CutSuffix(raw, suffix); ok {
				raw = strings.TrimSpace(rest)
				break
			}
		}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrInvalidYear, "parse year"), "year", s)
	}
	n *= int64(sign)
	if n < int64(OpenStart) || n > int64(OpenEnd) {
		return 0, zerr.With(zerr.Wrap(ErrInvalidYear, "year out of range"), "year", s)
	}
	return Year(n), nil
}
