package app

import (
	"context"

	"go.trai.ch/atlas/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ExploreOptions configuration for the Explore method.
type ExploreOptions struct {
	Year   *domain.Year
	Center domain.GeoPoint
	Zoom   int
	Show   []domain.Category
	// OutputMode is one of "auto", "tui", "linear" or "ci".
	OutputMode string
}

// Explore opens the interactive explorer. Outside a terminal it prints the
// frame at the cursor and, when zoomed in far enough, the local history.
func (a *App) Explore(ctx context.Context, opts ExploreOptions) error {
	if err := opts.Center.Validate(); err != nil {
		return err
	}
	cfg, cat, err := a.load(ctx)
	if err != nil {
		return err
	}
	coord := a.coordinator(cat, yearOr(opts.Year), opts.Show...)

	mode := detector.ResolveMode(detector.Detect(a.stdout), opts.OutputMode)
	if mode == detector.ModeLinear {
		return a.exploreLinear(ctx, cfg, coord.Current(), opts)
	}

	var session *lookup.Session
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	trigger := func(t lookup.Trigger) {
		if session != nil {
			_ = session.Trigger(runCtx, t)
		}
	}
	modelOpts := []tui.Option{tui.WithCenter(opts.Center)}
	if opts.Zoom > 0 {
		modelOpts = append(modelOpts, tui.WithZoom(opts.Zoom))
	}
	if cfg.Lookup.ZoomThreshold > 0 {
		modelOpts = append(modelOpts, tui.WithZoomThreshold(cfg.Lookup.ZoomThreshold))
	}
	renderer := tui.NewRenderer(tui.NewModel(coord, trigger, modelOpts...), a.teaOptions...)

	tp := telemetry.NewProvider(telemetry.NewTUIBridge(renderer))
	defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()
	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	resolver, _, _, err := a.lookups(cfg, tracer)
	if err != nil {
		return err
	}
	if resolver != nil {
		session = lookup.NewSession(resolver,
			lookup.WithDebounce(cfg.Lookup.Debounce),
			lookup.WithZoomThreshold(cfg.Lookup.ZoomThreshold),
			lookup.WithOnUpdate(renderer.OnLookup),
		)
	}

	if err := renderer.Start(runCtx); err != nil {
		return zerr.Wrap(err, "failed to start explorer")
	}

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		err := renderer.Wait()
		cancel()
		return err
	})
	if session != nil {
		g.Go(func() error {
			session.Run(gctx)
			return nil
		})
	}
	if cfg.Data.Watch {
		g.Go(func() error {
			return a.watch(gctx, cfg, coord, func() { renderer.OnFrame(coord.Current()) })
		})
	}
	return g.Wait()
}

func (a *App) exploreLinear(ctx context.Context, cfg *domain.Config, frame domain.Frame, opts ExploreOptions) error {
	r := linear.NewRenderer(a.stdout, a.stderr, linear.FormatText)
	r.OnFrame(frame)
	if err := r.Stop(); err != nil {
		return err
	}

	threshold := cfg.Lookup.ZoomThreshold
	if threshold <= 0 {
		threshold = domain.DefaultZoomThreshold
	}
	if opts.Zoom < threshold {
		return nil
	}
	return a.Lookup(ctx, LookupOptions{Point: opts.Center, Year: frame.Year, Format: linear.FormatText})
}
