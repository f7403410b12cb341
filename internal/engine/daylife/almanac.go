// Package daylife answers what an ordinary day looked like for the people of a region.
package daylife

import (
	_ "embed"
	"encoding/json"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed seed.json
var seed []byte

// DefaultRoleIcon is shown for roles without an icon of their own.
const DefaultRoleIcon = "👤"

var roleIcons = map[string]string{
	"farmer":    "👨‍🌾",
	"noble":     "👑",
	"citizen":   "🏛️",
	"slave":     "⛓️",
	"nomad":     "🏕️",
	"warrior":   "⚔️",
	"serf":      "🌾",
	"knight":    "🛡️",
	"monk":      "📿",
	"merchant":  "💰",
	"craftsman": "🔨",
}

// RoleIcon returns the icon of a social role.
func RoleIcon(role string) string {
	if icon, ok := roleIcons[role]; ok {
		return icon
	}
	return DefaultRoleIcon
}

// Almanac holds the daily life tables. It is read-only after construction.
type Almanac struct {
	regions []domain.LifeRegion
}

// New creates an Almanac over regions. Regions are matched in the given order.
func New(regions []domain.LifeRegion) *Almanac {
	return &Almanac{regions: regions}
}

// Seed returns the Almanac built into the binary.
func Seed() (*Almanac, error) {
	var doc struct {
		Regions []domain.LifeRegion `json:"regions"`
	}
	if err := json.Unmarshal(seed, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetParse, err.Error()), "dataset", "daily life")
	}
	return New(doc.Regions), nil
}

// Regions lists the region names in match order.
func (a *Almanac) Regions() []string {
	names := make([]string, len(a.regions))
	for i, r := range a.regions {
		names[i] = r.Region
	}
	return names
}

// Life returns the role days of the first region matching name, for the latest
// period at or before y.
func (a *Almanac) Life(name string, y domain.Year) (domain.DailyLife, error) {
	for _, r := range a.regions {
		if !r.Matches(name) {
			continue
		}
		period, ok := domain.LatestAtOrBefore(r.Periods, y)
		if !ok {
			break
		}
		return domain.DailyLife{
			Region: r.Region,
			Year:   period.Year,
			Label:  "Life around " + domain.FormatYear(period.Year),
			Roles:  period.Roles,
		}, nil
	}
	return domain.DailyLife{}, zerr.With(zerr.Wrap(domain.ErrRegionNotFound, "no daily life data"), "region", name)
}
