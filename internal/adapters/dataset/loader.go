// Package dataset reads the overlay datasets from a data directory.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.DatasetLoader = (*Loader)(nil)

// Loader implements ports.DatasetLoader on JSON files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every category concurrently. A category that cannot be read or decoded
// stays empty and is recorded in Catalog.Failures. A broken trade dataset is replaced
// by the built-in Silk Road route.
func (l *Loader) Load(ctx context.Context, dir string) (*domain.Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetNotFound, "data directory unavailable"), "dir", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetNotFound, "data path is not a directory"), "dir", dir)
	}

	cat := &domain.Catalog{Failures: make(map[domain.Category]error)}
	sums := make(map[domain.Category]uint64)
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	for category, decode := range decoders(cat) {
		path, _ := domain.DatasetPath(dir, category)
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			data, err := readDataset(path)
			if err == nil {
				err = decode(data)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				cat.Failures[category] = zerr.With(err, "category", string(category))
				return nil
			}
			sums[category] = checksum(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "dataset loading interrupted")
	}

	if err, failed := cat.Failures[domain.CategoryTrade]; failed {
		l.logger.Error(zerr.Wrap(err, "using fallback trade route"))
		delete(cat.Failures, domain.CategoryTrade)
		cat.TradeRoutes = []domain.TradeRoute{domain.SilkRoad()}
	}
	for _, category := range domain.DatasetCategories() {
		if err, failed := cat.Failures[category]; failed {
			l.logger.Error(err)
		}
	}

	cat.Fingerprint = fingerprint(sums)
	return cat, nil
}

// decoders binds each category to the catalog field it fills.
// Every decoder writes a distinct field, so they may run concurrently.
func decoders(cat *domain.Catalog) map[domain.Category]func([]byte) error {
	return map[domain.Category]func([]byte) error{
		domain.CategoryClimate:    func(b []byte) error { return decodeList(b, "periods", &cat.Climate) },
		domain.CategoryPopulation: func(b []byte) error { return decodeList(b, "snapshots", &cat.Population) },
		domain.CategoryPlagues:    func(b []byte) error { return decodeList(b, "plagues", &cat.Plagues) },
		domain.CategoryReligions:  func(b []byte) error { return decodeList(b, "religions", &cat.Religions) },
		domain.CategoryTechnology: func(b []byte) error { return decodeList(b, "technologies", &cat.Technologies) },
		domain.CategoryTrade: func(b []byte) error {
			routes, err := DecodeTradeRoutes(b)
			cat.TradeRoutes = routes
			return err
		},
		domain.CategoryWars:    func(b []byte) error { return decodeList(b, "wars", &cat.Wars) },
		domain.CategoryWonders: func(b []byte) error { return decodeList(b, "wonders", &cat.Wonders) },
		domain.CategoryRulers:  func(b []byte) error { return decodeList(b, "rulers", &cat.Rulers) },
	}
}

func readDataset(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured data directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetNotFound, "missing dataset file"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetRead, err.Error()), "path", path)
	}
	return data, nil
}

// decodeList decodes the array stored under key in a JSON object.
func decodeList[T any](data []byte, key string, dst *[]T) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return zerr.Wrap(domain.ErrDatasetParse, err.Error())
	}
	raw, ok := envelope[key]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrDatasetParse, "missing top-level key"), "key", key)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDatasetParse, err.Error()), "key", key)
	}
	*dst = items
	return nil
}
