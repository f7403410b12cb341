// Package httpapi serves the overlay engine and location lookups over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/atlas/internal/engine/daylife"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/atlas/internal/engine/overlay"
	"go.trai.ch/atlas/internal/engine/rabbithole"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server exposes the JSON API, metrics and the static front end.
type Server struct {
	coord    *overlay.Coordinator
	resolver *lookup.Resolver
	narrator ports.Narrator
	geocoder ports.Geocoder
	logger   ports.Logger
	almanac  *daylife.Almanac
	explorer *rabbithole.Explorer

	metrics       http.Handler
	webDir        string
	zoomThreshold int
}

// Option configures a Server.
type Option func(*Server)

// WithLookups enables the narrative endpoints. Without a narrator they answer 503.
func WithLookups(resolver *lookup.Resolver, narrator ports.Narrator) Option {
	return func(s *Server) {
		s.resolver = resolver
		s.narrator = narrator
	}
}

// WithAlmanac enables /api/daylife.
func WithAlmanac(a *daylife.Almanac) Option {
	return func(s *Server) { s.almanac = a }
}

// WithExplorer enables the /api/explore endpoints.
func WithExplorer(e *rabbithole.Explorer) Option {
	return func(s *Server) { s.explorer = e }
}

// WithMetricsHandler mounts h on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithWebDir serves static files from dir for every path the API does not handle.
func WithWebDir(dir string) Option {
	return func(s *Server) { s.webDir = dir }
}

// WithZoomThreshold sets the minimum zoom at which /api/lookup resolves.
func WithZoomThreshold(z int) Option {
	return func(s *Server) { s.zoomThreshold = z }
}

// New creates a Server over coord.
func New(coord *overlay.Coordinator, geocoder ports.Geocoder, logger ports.Logger, opts ...Option) *Server {
	s := &Server{coord: coord, geocoder: geocoder, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/overlays", s.handleOverlays)
	mux.HandleFunc("GET /api/tech", s.handleTechList)
	mux.HandleFunc("GET /api/tech/{id}", s.handleTechDetail)
	mux.HandleFunc("GET /api/rulers", s.handleRulers)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("POST /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/lookup", s.handleLookup)
	mux.HandleFunc("GET /api/reverse", s.handleReverse)
	mux.HandleFunc("GET /api/daylife", s.handleDayLife)
	mux.HandleFunc("GET /api/explore", s.handleExplore)
	mux.HandleFunc("GET /api/explore/back", s.handleExploreBack)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
	if s.webDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.webDir)))
	}

	return recoverPanics(s.logger, requestID(cors(mux)))
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
// ready, when not nil, receives the bound address once the listener is open.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}
	if ready != nil {
		ready(ln.Addr())
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "http server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"failures": len(s.coord.Failures()),
	})
}
