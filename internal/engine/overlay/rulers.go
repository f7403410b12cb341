package overlay

import (
	"go.trai.ch/atlas/internal/core/domain"
)

var governmentIcons = map[string]string{
	"Divine Monarchy":         "👑",
	"Monarchy":                "👑",
	"Hereditary Monarchy":     "👑",
	"Feudal Monarchy":         "🏰",
	"Absolute Monarchy":       "👑",
	"Constitutional Monarchy": "🏛️",
	"Theocratic Monarchy":     "⛪",
	"Zoroastrian Monarchy":    "🔥",
	"Universal Monarchy":      "🌍",
	"Empire":                  "🦅",
	"Imperial Province":       "🏛️",
	"Principate":              "🏛️",
	"Dominate":                "👑",
	"Autocracy":               "👑",
	"Republic":                "🗳️",
	"Direct Democracy":        "🗳️",
	"Oligarchy":               "👥",
	"Military Oligarchy":      "⚔️",
	"Military Dictatorship":   "⚔️",
	"Sultanate":               "☪️",
	"Islamic Caliphate":       "☪️",
	"Islamic Emirate":         "☪️",
	"Shia Theocracy":          "☪️",
	"Khanate":                 "🏇",
	"Beylik":                  "🏇",
	"Communist State":         "☭",
	"Communist Dictatorship":  "☭",
	"Colonial":                "🏴",
	"Confucian Bureaucracy":   "📜",
	"Confucian Autocracy":     "📜",
	"Civil Bureaucracy":       "📜",
	"Legalist Autocracy":      "⚖️",
	"Hellenistic Monarchy":    "🏛️",
	"Elective Monarchy":       "👑",
	"Principality":            "🏰",
	"Tsardom":                 "👑",
	"City-States":             "🏛️",
	"Successor Kingdoms":      "⚔️",
	"Personal Union":          "💍",
}

// GovernmentIcon returns the icon of a form of government.
func GovernmentIcon(government string) string {
	if i, ok := governmentIcons[government]; ok {
		return i
	}
	return "🏛️"
}

// RulerResult is the answer to a ruler query. Period is nil when the region is
// known but no reign covers the year.
type RulerResult struct {
	Region  string               `json:"region"`
	Year    domain.Year          `json:"year"`
	Period  *domain.RulerPeriod  `json:"period,omitempty"`
	Icon    string               `json:"icon,omitempty"`
	Periods []domain.RulerPeriod `json:"periods"`
}

// RulerAt finds the first region matching name and the reign covering y.
// It reports false when no region matches.
func RulerAt(regions []domain.RulerRegion, name string, y domain.Year) (RulerResult, bool) {
	for _, r := range regions {
		if !r.Matches(name) {
			continue
		}
		res := RulerResult{Region: r.Region, Year: y, Periods: r.Periods}
		if p, ok := r.PeriodAt(y); ok {
			res.Period = &p
			res.Icon = GovernmentIcon(p.Government)
		}
		return res, true
	}
	return RulerResult{}, false
}
