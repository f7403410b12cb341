// Package app implements the application layer for atlas.
package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/atlas/internal/adapters/geocoder"   //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/narrator"   //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/adapters/redisstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/atlas/internal/engine/overlay"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger   ports.Logger
	configs  ports.ConfigLoader
	datasets ports.DatasetLoader
	watcher  ports.Watcher
	tracer   ports.Tracer
	metrics  *metrics.Prometheus

	client     *http.Client
	workDir    string
	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	log ports.Logger,
	configs ports.ConfigLoader,
	datasets ports.DatasetLoader,
	watcher ports.Watcher,
	tracer ports.Tracer,
	prom *metrics.Prometheus,
) *App {
	return &App{
		logger:   log,
		configs:  configs,
		datasets: datasets,
		watcher:  watcher,
		tracer:   tracer,
		metrics:  prom,
		client:   http.DefaultClient,
		workDir:  ".",
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects frames and narratives to stdout and progress to stderr.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout, a.stderr = stdout, stderr
	return a
}

// WithHTTPClient sets the client used by the narrator and the geocoder.
func (a *App) WithHTTPClient(c *http.Client) *App {
	a.client = c
	return a
}

// WithWorkDir sets the directory the configuration search starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// load reads the configuration and every dataset.
func (a *App) load(ctx context.Context) (*domain.Config, *domain.Catalog, error) {
	cfg, err := a.configs.Load(a.workDir)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(cfg.Log.JSON)
	}

	cat, err := a.datasets.Load(ctx, cfg.Path(cfg.Data.Dir))
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load datasets")
	}
	return cfg, cat, nil
}

// coordinator builds the overlay coordinator with the given layers visible.
func (a *App) coordinator(cat *domain.Catalog, y *domain.Year, visible ...domain.Category) *overlay.Coordinator {
	opts := []overlay.Option{overlay.WithVisible(visible...)}
	if a.metrics != nil {
		opts = append(opts, overlay.WithMetrics(a.metrics))
	}
	if y != nil {
		opts = append(opts, overlay.WithYear(*y))
	}
	return overlay.NewCoordinator(cat, opts...)
}

// lookups wires the location lookup pipeline. The resolver and narrator are nil
// when no API key is configured; the geocoder is always available.
func (a *App) lookups(cfg *domain.Config, tracer ports.Tracer) (*lookup.Resolver, ports.Narrator, ports.Geocoder, error) {
	geo := geocoder.NewNominatim(cfg.Geocoder, a.client, a.logger)

	narr, err := narrator.New(cfg.Narrator, a.client)
	if errors.Is(err, domain.ErrMissingCredentials) {
		a.logger.Warn("narrator API key missing, location lookups are disabled")
		return nil, nil, geo, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}

	var store ports.LookupStore = lookup.NewCache()
	if cfg.Cache.RedisAddr != "" {
		store = redisstore.New(redisstore.Open(cfg.Cache))
	}

	opts := []lookup.Option{
		lookup.WithBucketSize(cfg.Lookup.Bucket),
		lookup.WithTimeout(cfg.Lookup.Timeout),
		lookup.WithProvider(cfg.Narrator.Provider),
	}
	if tracer != nil {
		opts = append(opts, lookup.WithTracer(tracer))
	}
	if a.metrics != nil {
		opts = append(opts, lookup.WithMetrics(a.metrics))
	}
	return lookup.NewResolver(store, narr, geo, opts...), narr, geo, nil
}
