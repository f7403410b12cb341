package overlay

import (
	"maps"
	"slices"
	"sync"
	"time"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

// Coordinator owns the overlays of one catalog with their visibility and the current year.
// It is safe for concurrent use; a Reload swaps the datasets while keeping the view state.
type Coordinator struct {
	mu sync.RWMutex

	catalog  *domain.Catalog
	overlays map[domain.Category]Overlay
	graph    *domain.TechGraph
	failures map[domain.Category]error
	bounds   domain.Range
	bounded  bool

	visible map[domain.Category]bool
	year    domain.Year

	metrics ports.Metrics
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithMetrics reports every rendered frame.
func WithMetrics(m ports.Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// WithVisible shows the given categories initially.
func WithVisible(cats ...domain.Category) Option {
	return func(c *Coordinator) {
		for _, cat := range cats {
			c.visible[cat] = true
		}
	}
}

// WithYear sets the initial year.
func WithYear(y domain.Year) Option {
	return func(c *Coordinator) { c.year = y }
}

// NewCoordinator builds the overlays of cat. Every category starts hidden.
func NewCoordinator(cat *domain.Catalog, opts ...Option) *Coordinator {
	c := &Coordinator{
		visible: make(map[domain.Category]bool),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load(cat)
	return c
}

// Reload replaces the datasets. Visibility and year are kept, the year is clamped to the new bounds.
func (c *Coordinator) Reload(cat *domain.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(cat)
	c.year = c.clamp(c.year)
}

func (c *Coordinator) load(cat *domain.Catalog) {
	if cat == nil {
		cat = &domain.Catalog{}
	}
	c.catalog = cat
	c.failures = make(map[domain.Category]error)
	maps.Copy(c.failures, cat.Failures)

	graph, err := domain.NewTechGraph(cat.Technologies)
	if err != nil {
		c.failures[domain.CategoryTechnology] = err
		graph = nil
	}
	c.graph = graph

	c.overlays = map[domain.Category]Overlay{
		domain.CategoryClimate:    NewClimate(cat.Climate),
		domain.CategoryPopulation: NewPopulation(cat.Population),
		domain.CategoryPlagues:    NewPlagues(cat.Plagues),
		domain.CategoryReligions:  NewReligions(cat.Religions),
		domain.CategoryTechnology: NewTechnology(graph),
		domain.CategoryTrade:      NewTrade(cat.TradeRoutes),
		domain.CategoryWars:       NewWars(cat.Wars),
		domain.CategoryWonders:    NewWonders(cat.Wonders),
	}
	c.bounds, c.bounded = cat.YearBounds()
}

func (c *Coordinator) clamp(y domain.Year) domain.Year {
	if !c.bounded {
		return y
	}
	return y.Clamp(c.bounds.Start, c.bounds.End)
}

func checkOverlay(cat domain.Category) error {
	if !slices.Contains(domain.OverlayCategories(), cat) {
		return zerr.With(zerr.Wrap(domain.ErrUnknownCategory, "not an overlay"), "category", string(cat))
	}
	return nil
}

// SetVisible shows or hides a category.
func (c *Coordinator) SetVisible(cat domain.Category, visible bool) error {
	if err := checkOverlay(cat); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible[cat] = visible
	return nil
}

// Toggle flips a category and returns its new visibility.
func (c *Coordinator) Toggle(cat domain.Category) (bool, error) {
	if err := checkOverlay(cat); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible[cat] = !c.visible[cat]
	return c.visible[cat], nil
}

// States returns the visibility of every overlay in draw order.
func (c *Coordinator) States() []State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cats := domain.OverlayCategories()
	out := make([]State, len(cats))
	for i, cat := range cats {
		out[i] = State{Category: cat, Visible: c.visible[cat]}
	}
	return out
}

// Visible returns the shown categories in draw order.
func (c *Coordinator) Visible() []domain.Category {
	var out []domain.Category
	for _, s := range c.States() {
		if s.Visible {
			out = append(out, s.Category)
		}
	}
	return out
}

// Year returns the current year.
func (c *Coordinator) Year() domain.Year {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.year
}

// JumpTo moves the current year, clamped to the span covered by the datasets, and returns it.
func (c *Coordinator) JumpTo(y domain.Year) domain.Year {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.year = c.clamp(y)
	return c.year
}

// Bounds returns the span of years covered by the datasets.
func (c *Coordinator) Bounds() (domain.Range, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bounds, c.bounded
}

// Current renders the visible overlays at the current year.
func (c *Coordinator) Current() domain.Frame {
	return c.FrameFor(c.Year(), c.Visible())
}

// Frame renders the visible overlays at y.
func (c *Coordinator) Frame(y domain.Year) domain.Frame {
	return c.FrameFor(y, c.Visible())
}

// FrameFor renders the given categories at y without touching the coordinator's view state.
// Every call regenerates all commands from scratch.
func (c *Coordinator) FrameFor(y domain.Year, cats []domain.Category) domain.Frame {
	start := time.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := domain.Frame{
		Year:      y,
		Label:     domain.FormatYear(y),
		Visible:   []domain.Category{},
		Commands:  []domain.DrawCommand{},
		Summaries: []domain.Summary{},
	}
	for _, cat := range domain.OverlayCategories() {
		if !slices.Contains(cats, cat) {
			continue
		}
		f.Visible = append(f.Visible, cat)
		f.Commands = append(f.Commands, ComputeDrawCommands(State{Category: cat, Visible: true}, c.overlays[cat], y)...)
		f.Summaries = append(f.Summaries, c.summary(cat, y))
	}
	c.metrics.FrameRendered(len(f.Commands), time.Since(start))
	return f
}

func (c *Coordinator) summary(cat domain.Category, y domain.Year) domain.Summary {
	if err, failed := c.failures[cat]; failed {
		s := noData(cat)
		s.Details = []string{err.Error()}
		return s
	}
	return c.overlays[cat].Summary(y)
}

// Overlay returns the overlay of a category.
func (c *Coordinator) Overlay(cat domain.Category) (Overlay, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.overlays[cat]
	return o, ok
}

// Climate returns the climate overlay.
func (c *Coordinator) Climate() *Climate {
	o, _ := c.Overlay(domain.CategoryClimate)
	return o.(*Climate)
}

// Population returns the population overlay.
func (c *Coordinator) Population() *Population {
	o, _ := c.Overlay(domain.CategoryPopulation)
	return o.(*Population)
}

// Trade returns the trade overlay.
func (c *Coordinator) Trade() *Trade {
	o, _ := c.Overlay(domain.CategoryTrade)
	return o.(*Trade)
}

// Graph returns the technology graph, or nil when it failed validation.
func (c *Coordinator) Graph() *domain.TechGraph {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph
}

// Rulers returns the ruler timelines.
func (c *Coordinator) Rulers() []domain.RulerRegion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Rulers
}

// Failures returns the categories that failed to load or validate.
func (c *Coordinator) Failures() map[domain.Category]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.failures)
}

// Fingerprint identifies the loaded catalog.
func (c *Coordinator) Fingerprint() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Fingerprint
}

type noopMetrics struct{}

func (noopMetrics) LookupServed(string)                    {}
func (noopMetrics) NarratorLatency(string, time.Duration) {}
func (noopMetrics) FrameRendered(int, time.Duration)      {}
