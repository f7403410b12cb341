package watcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/atlas/internal/adapters/dataset"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reloader reloads the catalog when a dataset file changes on disk.
// Files whose content hash is unchanged do not trigger a reload.
type Reloader struct {
	loader   ports.DatasetLoader
	logger   ports.Logger
	dir      string
	window   time.Duration
	onReload func(*domain.Catalog)

	mu   sync.Mutex
	sums map[string]uint64
}

// NewReloader creates a Reloader for dir. onReload receives every successfully loaded catalog.
func NewReloader(
	loader ports.DatasetLoader,
	logger ports.Logger,
	dir string,
	window time.Duration,
	onReload func(*domain.Catalog),
) *Reloader {
	return &Reloader{
		loader:   loader,
		logger:   logger,
		dir:      dir,
		window:   window,
		onReload: onReload,
		sums:     make(map[string]uint64),
	}
}

// Run watches the data directory until the watcher's event stream ends.
func (r *Reloader) Run(ctx context.Context, w ports.Watcher) error {
	if err := w.Start(ctx, r.dir); err != nil {
		return zerr.Wrap(err, "failed to start dataset watcher")
	}
	defer w.Stop() //nolint:errcheck // Best effort close on shutdown

	r.prime()

	d := NewDebouncer(r.window, func(paths []string) { r.reload(ctx, paths) })
	for event := range w.Events() {
		if _, ok := domain.CategoryForFile(event.Path); ok {
			d.Add(event.Path)
		}
	}
	d.Flush()
	return nil
}

// prime records the hashes of the datasets currently on disk.
func (r *Reloader) prime() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range domain.DatasetCategories() {
		path, _ := domain.DatasetPath(r.dir, c)
		if sum, err := dataset.HashFile(path); err == nil {
			r.sums[path] = sum
		}
	}
}

// changed updates the recorded hashes and returns the paths whose content differs.
func (r *Reloader) changed(paths []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, path := range paths {
		sum, err := dataset.HashFile(path)
		if err != nil {
			if _, known := r.sums[path]; known {
				delete(r.sums, path)
				out = append(out, path)
			}
			continue
		}
		if prev, known := r.sums[path]; !known || prev != sum {
			r.sums[path] = sum
			out = append(out, path)
		}
	}
	return out
}

func (r *Reloader) reload(ctx context.Context, paths []string) {
	changed := r.changed(paths)
	if len(changed) == 0 {
		return
	}

	cat, err := r.loader.Load(ctx, r.dir)
	if err != nil {
		r.logger.Error(zerr.Wrap(err, "dataset reload failed"))
		return
	}
	r.onReload(cat)

	names := make([]string, 0, len(changed))
	for _, path := range changed {
		c, _ := domain.CategoryForFile(path)
		names = append(names, string(c))
	}
	r.logger.Info(fmt.Sprintf("reloaded datasets (%s changed)", strings.Join(names, ", ")))
}
