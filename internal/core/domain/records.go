package domain

import (
	"slices"
	"strings"
)

// Climate event severities, most severe first.
const (
	SeverityExtreme    = "extreme"
	SeveritySevere     = "severe"
	SeverityModerate   = "moderate"
	SeverityBeneficial = "beneficial"
)

// SeverityRank orders severities; lower is more severe. Unknown severities rank last.
func SeverityRank(s string) int {
	switch s {
	case SeverityExtreme:
		return 0
	case SeveritySevere:
		return 1
	case SeverityModerate:
		return 2
	case SeverityBeneficial:
		return 3
	default:
		return 4
	}
}

// AffectedRegion is a place touched by a climate event.
type AffectedRegion struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
}

// Point returns the region location.
func (r AffectedRegion) Point() GeoPoint {
	return GeoPoint{Lat: r.Lat, Lng: r.Lng}
}

// ClimatePeriod is a dated climate event such as a drought or volcanic winter.
type ClimatePeriod struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Start           Year             `json:"start"`
	End             Year             `json:"end"`
	Severity        string           `json:"severity"`
	Description     string           `json:"description"`
	Impacts         []string         `json:"impacts"`
	AffectedRegions []AffectedRegion `json:"affected_regions"`
}

// TimeRange implements Ranged.
func (c ClimatePeriod) TimeRange() Range {
	return Range{Start: c.Start, End: c.End}
}

// Points returns the locations of the affected regions.
func (c ClimatePeriod) Points() []GeoPoint {
	pts := make([]GeoPoint, len(c.AffectedRegions))
	for i, r := range c.AffectedRegions {
		pts[i] = r.Point()
	}
	return pts
}

// MentionsCollapse reports whether any impact mentions a collapse, fall or destruction.
func (c ClimatePeriod) MentionsCollapse() bool {
	return slices.ContainsFunc(c.Impacts, func(i string) bool {
		l := strings.ToLower(i)
		return strings.Contains(l, "collapse") || strings.Contains(l, "fell") || strings.Contains(l, "destroyed")
	})
}

// PopulationRegion is one population center inside a snapshot.
type PopulationRegion struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Population float64 `json:"population"` // thousands
	Density    string  `json:"density"`
}

// Point returns the region location.
func (r PopulationRegion) Point() GeoPoint {
	return GeoPoint{Lat: r.Lat, Lng: r.Lng}
}

// PopulationSnapshot is a full world population sample at one year.
type PopulationSnapshot struct {
	Year    Year               `json:"year"`
	Total   float64            `json:"total"` // thousands
	Notes   string             `json:"notes,omitempty"`
	Regions []PopulationRegion `json:"regions"`
}

// SnapshotYear implements Dated.
func (s PopulationSnapshot) SnapshotYear() Year {
	return s.Year
}

// PlagueOrigin is where an outbreak began.
type PlagueOrigin struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Region string  `json:"region"`
}

// PlagueRegion is a region reached by an outbreak.
type PlagueRegion struct {
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Deaths string  `json:"deaths,omitempty"`
}

// Plague is a disease outbreak. A missing end means the outbreak is ongoing.
type Plague struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Icon             string         `json:"icon,omitempty"`
	Color            string         `json:"color,omitempty"`
	Start            Year           `json:"start"`
	End              *Year          `json:"end,omitempty"`
	Pathogen         string         `json:"pathogen,omitempty"`
	Deaths           string         `json:"deaths,omitempty"`
	MortalityRate    string         `json:"mortality_rate,omitempty"`
	Description      string         `json:"description,omitempty"`
	HistoricalImpact string         `json:"historical_impact,omitempty"`
	Origin           PlagueOrigin   `json:"origin"`
	SpreadRegions    []PlagueRegion `json:"spread_regions"`
	Sources          []string       `json:"sources,omitempty"`
}

// TimeRange implements Ranged; an ongoing outbreak ends at OpenEnd.
func (p Plague) TimeRange() Range {
	if p.End == nil {
		return OpenRange(p.Start)
	}
	return Range{Start: p.Start, End: *p.End}
}

// ReligionOrigin is the founding event of a religion.
type ReligionOrigin struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Date   Year    `json:"date"`
	Region string  `json:"region,omitempty"`
}

// ReligionSpread is a dated arrival of a religion in a region.
type ReligionSpread struct {
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Year   Year    `json:"year"`
	Event  string  `json:"event,omitempty"`
}

// Religion is a point-diffusion record.
type Religion struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Icon        string           `json:"icon,omitempty"`
	Color       string           `json:"color,omitempty"`
	Founder     string           `json:"founder,omitempty"`
	Description string           `json:"description,omitempty"`
	Adherents   string           `json:"adherents_today,omitempty"`
	CoreBeliefs []string         `json:"core_beliefs,omitempty"`
	Texts       []string         `json:"sacred_texts,omitempty"`
	Origin      ReligionOrigin   `json:"origin"`
	Spread      []ReligionSpread `json:"spread,omitempty"`
}

// Age returns the years elapsed since the founding at y.
func (r Religion) Age(y Year) Year {
	return y - r.Origin.Date
}

// Diffusion converts the religion to its temporal shape.
func (r Religion) Diffusion() Diffusion {
	d := Diffusion{
		Origin: Spread{
			Point: GeoPoint{Lat: r.Origin.Lat, Lng: r.Origin.Lng},
			Date:  r.Origin.Date,
			Label: r.Origin.Region,
		},
		Spreads: make([]Spread, len(r.Spread)),
	}
	for i, s := range r.Spread {
		d.Spreads[i] = Spread{Point: GeoPoint{Lat: s.Lat, Lng: s.Lng}, Date: s.Year, Label: s.Region, Note: s.Event}
	}
	return d
}

// Route types.
const (
	RouteLand     = "land"
	RouteMaritime = "maritime"
)

// TradeRoute is a trade path with an active period and a peak sub-period.
type TradeRoute struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Window      PeakWindow `json:"window"`
	Color       string     `json:"color"`
	Width       float64    `json:"width"`
	Goods       []string   `json:"goods,omitempty"`
	Cities      []string   `json:"cities,omitempty"`
	Description string     `json:"description,omitempty"`
	Sources     []string   `json:"sources,omitempty"`
	Path        []GeoPoint `json:"path"`
}

// TimeRange implements Ranged.
func (t TradeRoute) TimeRange() Range {
	return t.Window.Active
}

// CarriesGoods reports whether any traded good contains q, case-insensitively.
func (t TradeRoute) CarriesGoods(q string) bool {
	q = strings.ToLower(q)
	return slices.ContainsFunc(t.Goods, func(g string) bool {
		return strings.Contains(strings.ToLower(g), q)
	})
}

// War is a conflict located at one theater point.
type War struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Start        Year     `json:"start"`
	End          Year     `json:"end"`
	Location     GeoPoint `json:"location"`
	Belligerents []string `json:"belligerents,omitempty"`
	Victor       string   `json:"victor,omitempty"`
	Casualties   string   `json:"casualties,omitempty"`
	Theater      string   `json:"theater,omitempty"`
	Outcome      string   `json:"outcome,omitempty"`
	Significance string   `json:"significance,omitempty"`
	Battles      []string `json:"battles,omitempty"`
}

// TimeRange implements Ranged.
func (w War) TimeRange() Range {
	return Range{Start: w.Start, End: w.End}
}

// Wonder is a monument or natural landmark.
// A missing build year means it predates the dataset; a destroyed wonder is drawn as ruins.
type Wonder struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon,omitempty"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Built       *Year   `json:"built,omitempty"`
	Destroyed   *Year   `json:"destroyed,omitempty"`
	Status      string  `json:"status,omitempty"`
	Location    string  `json:"location,omitempty"`
	Builder     string  `json:"builder,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TimeRange implements Ranged. Wonders stay on the map after destruction.
func (w Wonder) TimeRange() Range {
	if w.Built == nil {
		return Range{Start: OpenStart, End: OpenEnd}
	}
	return OpenRange(*w.Built)
}

// Ruined reports whether the wonder was destroyed before y.
func (w Wonder) Ruined(y Year) bool {
	return w.Destroyed != nil && y > *w.Destroyed
}

// RulerPeriod is one reign or regime in a region.
type RulerPeriod struct {
	Ruler      string `json:"ruler"`
	Title      string `json:"title,omitempty"`
	Dynasty    string `json:"dynasty,omitempty"`
	Government string `json:"government,omitempty"`
	Capital    string `json:"capital,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Start      Year   `json:"start"`
	End        Year   `json:"end"`
}

// TimeRange implements Ranged.
func (p RulerPeriod) TimeRange() Range {
	return Range{Start: p.Start, End: p.End}
}

// RulerRegion is the ruler timeline of one region.
type RulerRegion struct {
	Region  string        `json:"region"`
	Aliases []string      `json:"aliases,omitempty"`
	Periods []RulerPeriod `json:"periods"`
}

// Matches reports whether name designates the region.
// The region name must match exactly, ignoring case; aliases match by substring in either direction.
func (r RulerRegion) Matches(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	if strings.ToLower(r.Region) == n {
		return true
	}
	return slices.ContainsFunc(r.Aliases, func(a string) bool {
		a = strings.ToLower(strings.TrimSpace(a))
		return a != "" && (strings.Contains(n, a) || strings.Contains(a, n))
	})
}

// PeriodAt returns the first period containing y.
func (r RulerRegion) PeriodAt(y Year) (RulerPeriod, bool) {
	for _, p := range r.Periods {
		if p.TimeRange().Contains(y) {
			return p, true
		}
	}
	return RulerPeriod{}, false
}
