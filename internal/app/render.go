package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/atlas/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/atlas/internal/engine/overlay"
	"go.trai.ch/atlas/internal/ui/style"
	"go.trai.ch/zerr"
)

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Year   *domain.Year
	Show   []domain.Category
	Format linear.Format
}

// Render prints the frame of the visible overlays at one year.
// Without Show every overlay is drawn.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	_, cat, err := a.load(ctx)
	if err != nil {
		return err
	}
	show := opts.Show
	if len(show) == 0 {
		show = domain.OverlayCategories()
	}
	coord := a.coordinator(cat, yearOr(opts.Year), show...)

	r := linear.NewRenderer(a.stdout, a.stderr, opts.Format)
	if err := r.Start(ctx); err != nil {
		return err
	}
	r.OnFrame(coord.Current())
	if err := r.Stop(); err != nil {
		return err
	}
	return r.Wait()
}

// Tech prints one technology with its prerequisites and unlocks at a year.
func (a *App) Tech(ctx context.Context, id string, y *domain.Year) error {
	_, cat, err := a.load(ctx)
	if err != nil {
		return err
	}
	coord := a.coordinator(cat, nil)
	g := coord.Graph()
	if g == nil {
		if err, ok := coord.Failures()[domain.CategoryTechnology]; ok {
			return zerr.Wrap(err, "technology graph unavailable")
		}
		return zerr.With(zerr.Wrap(domain.ErrTechNotFound, "no technology dataset"), "id", id)
	}

	year := *yearOr(y)
	d, ok := overlay.Detail(g, id, year)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrTechNotFound, "unknown technology"), "id", id)
	}

	var b strings.Builder
	status := "locked"
	if d.Available {
		status = "available"
	}
	fmt.Fprintf(&b, "%s %s (%s)\n", d.Icon, d.Node.Name, d.Node.Category)
	fmt.Fprintf(&b, "  invented %s in %s, %s in %s\n",
		domain.FormatYear(d.Node.Origin.Date), d.Node.Origin.Region, status, domain.FormatYear(year))
	if d.Node.Description != "" {
		fmt.Fprintf(&b, "  %s\n", d.Node.Description)
	}
	writeRefs(&b, "requires", d.Prerequisites, nil)
	avail := make([]bool, len(d.Unlocks))
	refs := make([]domain.TechRef, len(d.Unlocks))
	for i, u := range d.Unlocks {
		refs[i], avail[i] = u.TechRef, u.Available
	}
	writeRefs(&b, "unlocks", refs, avail)
	for _, inv := range d.Independent {
		fmt.Fprintf(&b, "  also invented in %s (%s)\n", inv.Region, domain.FormatYear(inv.Date))
	}
	_, err = fmt.Fprint(a.stdout, b.String())
	return err
}

func writeRefs(b *strings.Builder, label string, refs []domain.TechRef, available []bool) {
	if len(refs) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for i, ref := range refs {
		name, mark := ref.ID, style.Check
		switch {
		case !ref.Resolved():
			name, mark = ref.ID+" (unknown)", style.Warning
		case available != nil && !available[i]:
			name, mark = ref.Node.Name, "🔒"
		default:
			name = ref.Node.Name
		}
		fmt.Fprintf(b, "    %s %s\n", mark, name)
	}
}

// Ruler prints who governed region at a year, followed by the region's timeline.
func (a *App) Ruler(ctx context.Context, region string, y *domain.Year) error {
	_, cat, err := a.load(ctx)
	if err != nil {
		return err
	}
	year := *yearOr(y)
	res, ok := overlay.RulerAt(a.coordinator(cat, nil).Rulers(), region, year)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrRegionNotFound, "no ruler data"), "region", region)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n", res.Region, domain.FormatYear(year))
	if res.Period != nil {
		fmt.Fprintf(&b, "  %s %s", res.Icon, res.Period.Ruler)
		if res.Period.Government != "" {
			fmt.Fprintf(&b, " · %s", res.Period.Government)
		}
		fmt.Fprintf(&b, " (%s – %s)\n", domain.FormatYear(res.Period.Start), domain.FormatYear(res.Period.End))
	} else {
		b.WriteString("  no recorded ruler\n")
	}
	for _, p := range res.Periods {
		marker := " "
		if res.Period != nil && p == *res.Period {
			marker = style.Arrow
		}
		fmt.Fprintf(&b, "  %s %s – %s  %s\n", marker, domain.FormatYear(p.Start), domain.FormatYear(p.End), p.Ruler)
	}
	_, err = fmt.Fprint(a.stdout, b.String())
	return err
}

// LookupOptions configuration for the Lookup method.
type LookupOptions struct {
	Point  domain.GeoPoint
	Year   domain.Year
	Format linear.Format
}

// Lookup narrates the history of one location at a year.
func (a *App) Lookup(ctx context.Context, opts LookupOptions) error {
	if err := opts.Point.Validate(); err != nil {
		return err
	}
	cfg, err := a.configs.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	resolver, _, _, err := a.lookups(cfg, a.tracer)
	if err != nil {
		return err
	}
	if resolver == nil {
		return zerr.With(zerr.Wrap(domain.ErrMissingCredentials, "set the narrator API key"), "provider", cfg.Narrator.Provider)
	}

	r := linear.NewRenderer(a.stdout, a.stderr, opts.Format)
	key := resolver.Key(opts.Point, opts.Year)
	r.OnLookup(domain.LookupUpdate{State: domain.LookupInFlight, Key: key})

	res, err := resolver.Lookup(ctx, opts.Point, opts.Year)
	if err != nil {
		r.OnLookup(domain.LookupUpdate{State: domain.LookupFailed, Key: key, Err: err})
		return zerr.Wrap(err, "lookup failed")
	}
	r.OnLookup(domain.LookupUpdate{
		State: domain.LookupResolved,
		Key:   res.Key,
		Entry: res.Entry,
		HTML:  lookup.FormatNarrative(res.Entry.Narrative),
	})
	return r.Stop()
}

func yearOr(y *domain.Year) *domain.Year {
	if y != nil {
		return y
	}
	d := defaultYear
	return &d
}
