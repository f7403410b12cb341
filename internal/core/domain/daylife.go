package domain

import (
	"slices"
	"strings"
)

// RoleDay is one ordinary day of a social role.
type RoleDay struct {
	Role           string `json:"role"`
	Title          string `json:"title"`
	Wake           string `json:"wake"`
	Morning        string `json:"morning"`
	Midday         string `json:"midday"`
	Afternoon      string `json:"afternoon"`
	Evening        string `json:"evening"`
	Concerns       string `json:"concerns,omitempty"`
	LifeExpectancy string `json:"life_expectancy,omitempty"`
	Diet           string `json:"diet,omitempty"`
}

// LifePeriod is the set of role days recorded for a region from Year on.
type LifePeriod struct {
	Year  Year      `json:"year"`
	Roles []RoleDay `json:"roles"`
}

// SnapshotYear implements Dated.
func (p LifePeriod) SnapshotYear() Year { return p.Year }

// LifeRegion is the daily life table of one region.
type LifeRegion struct {
	Region  string       `json:"region"`
	Aliases []string     `json:"aliases,omitempty"`
	Periods []LifePeriod `json:"periods"`
}

// Matches reports whether name designates the region: the region name matches
// exactly, ignoring case, and aliases match when name contains them.
func (r LifeRegion) Matches(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	if strings.ToLower(r.Region) == n {
		return true
	}
	return slices.ContainsFunc(r.Aliases, func(a string) bool {
		a = strings.ToLower(strings.TrimSpace(a))
		return a != "" && strings.Contains(n, a)
	})
}

// DailyLife is the answer to a day-in-the-life query.
type DailyLife struct {
	Region string    `json:"region"`
	Year   Year      `json:"year"`
	Label  string    `json:"label"`
	Roles  []RoleDay `json:"roles"`
}
