package app

import (
	"context"
	"net"

	"go.trai.ch/atlas/internal/adapters/httpapi"   //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/overlay"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// defaultYear is the cursor position when neither a flag nor a request names one.
const defaultYear domain.Year = 1000

// ServeOptions configuration for the Serve method. Zero values defer to atlas.yaml.
type ServeOptions struct {
	Addr   string
	WebDir string
	Watch  bool
	// Ready, when set, receives the bound address once the server listens.
	Ready func(net.Addr)
}

// Serve runs the HTTP API until ctx is cancelled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, cat, err := a.load(ctx)
	if err != nil {
		return err
	}
	year := defaultYear
	coord := a.coordinator(cat, &year, domain.OverlayCategories()...)

	tp := telemetry.NewProvider()
	defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()

	resolver, narr, geo, err := a.lookups(cfg, a.tracer)
	if err != nil {
		return err
	}

	addr := firstNonEmpty(opts.Addr, cfg.Server.Addr, domain.DefaultAddr)
	webDir := cfg.Path(firstNonEmpty(opts.WebDir, cfg.Server.WebDir))
	srvOpts := []httpapi.Option{
		httpapi.WithZoomThreshold(cfg.Lookup.ZoomThreshold),
		httpapi.WithWebDir(webDir),
	}
	if resolver != nil {
		srvOpts = append(srvOpts, httpapi.WithLookups(resolver, narr))
	}
	almanac, explorer, err := a.discovery(cfg, narr)
	if err != nil {
		return err
	}
	srvOpts = append(srvOpts, httpapi.WithAlmanac(almanac), httpapi.WithExplorer(explorer))
	if a.metrics != nil {
		srvOpts = append(srvOpts, httpapi.WithMetricsHandler(a.metrics.Handler()))
	}
	srv := httpapi.New(coord, geo, a.logger, srvOpts...)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, addr, func(bound net.Addr) {
			a.logger.Info("serving atlas on http://" + bound.String())
			if opts.Ready != nil {
				opts.Ready(bound)
			}
		})
	})
	if opts.Watch || cfg.Data.Watch {
		g.Go(func() error {
			return a.watch(ctx, cfg, coord, nil)
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "server stopped")
	}
	return nil
}

// watch reloads coord whenever a dataset file changes. onReload, when set, runs after each swap.
func (a *App) watch(ctx context.Context, cfg *domain.Config, coord *overlay.Coordinator, onReload func()) error {
	r := watcher.NewReloader(a.datasets, a.logger, cfg.Path(cfg.Data.Dir), watcher.DefaultDebounceWindow,
		func(cat *domain.Catalog) {
			coord.Reload(cat)
			if onReload != nil {
				onReload()
			}
		})
	return r.Run(ctx, a.watcher)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
