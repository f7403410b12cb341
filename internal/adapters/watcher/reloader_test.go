package watcher_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/adapters/watcher"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/atlas/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type reloaderFixture struct {
	dir      string
	watcher  *mocks.MockWatcher
	loader   *mocks.MockDatasetLoader
	logger   *mocks.MockLogger
	reloaded []*domain.Catalog
	reloader *watcher.Reloader
}

func newReloaderFixture(t *testing.T) *reloaderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &reloaderFixture{
		dir:     t.TempDir(),
		watcher: mocks.NewMockWatcher(ctrl),
		loader:  mocks.NewMockDatasetLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.write(t, "wars.json", `{"wars": []}`)
	f.write(t, "climate.json", `{"periods": []}`)
	f.reloader = watcher.NewReloader(f.loader, f.logger, f.dir, time.Hour, func(c *domain.Catalog) {
		f.reloaded = append(f.reloaded, c)
	})
	return f
}

func (f *reloaderFixture) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, name), []byte(content), 0o600))
}

// expectEvents makes the watcher yield events after running before, which
// stands in for the edits that produced them.
func (f *reloaderFixture) expectEvents(before func(), names ...string) {
	f.watcher.EXPECT().Start(gomock.Any(), f.dir).Return(nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.watcher.EXPECT().Events().DoAndReturn(func() iter.Seq[ports.WatchEvent] {
		before()
		events := make([]ports.WatchEvent, 0, len(names))
		for _, name := range names {
			events = append(events, ports.WatchEvent{Path: filepath.Join(f.dir, name), Operation: ports.OpWrite})
		}
		return slices.Values(events)
	})
}

func TestReloader_ReloadsChangedDataset(t *testing.T) {
	f := newReloaderFixture(t)
	f.expectEvents(func() {
		f.write(t, "wars.json", `{"wars": [{"id": "hundred-years-war"}]}`)
		f.write(t, "notes.txt", "scratch")
	}, "wars.json", "wars.json", "notes.txt", "climate.json")

	cat := &domain.Catalog{Fingerprint: 7}
	f.loader.EXPECT().Load(gomock.Any(), f.dir).Return(cat, nil)
	f.logger.EXPECT().Info("reloaded datasets (wars changed)")

	require.NoError(t, f.reloader.Run(t.Context(), f.watcher))
	assert.Equal(t, []*domain.Catalog{cat}, f.reloaded)
}

func TestReloader_IgnoresUnchangedContent(t *testing.T) {
	f := newReloaderFixture(t)
	f.expectEvents(func() {
		f.write(t, "wars.json", `{"wars": []}`)
	}, "wars.json")

	require.NoError(t, f.reloader.Run(t.Context(), f.watcher))
	assert.Empty(t, f.reloaded)
}

func TestReloader_RemovedAndCreatedFiles(t *testing.T) {
	f := newReloaderFixture(t)
	f.expectEvents(func() {
		require.NoError(t, os.Remove(filepath.Join(f.dir, "climate.json")))
		f.write(t, "wonders.json", `{"wonders": []}`)
	}, "climate.json", "wonders.json")

	f.loader.EXPECT().Load(gomock.Any(), f.dir).Return(&domain.Catalog{}, nil)
	f.logger.EXPECT().Info("reloaded datasets (climate, wonders changed)")

	require.NoError(t, f.reloader.Run(t.Context(), f.watcher))
	assert.Len(t, f.reloaded, 1)
}

func TestReloader_LoadFailureKeepsCatalog(t *testing.T) {
	f := newReloaderFixture(t)
	f.expectEvents(func() {
		f.write(t, "wars.json", `{"wars": null}`)
	}, "wars.json")

	f.loader.EXPECT().Load(gomock.Any(), f.dir).Return(nil, domain.ErrDatasetNotFound)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	})

	require.NoError(t, f.reloader.Run(t.Context(), f.watcher))
	assert.Empty(t, f.reloaded)
}

func TestReloader_StartFailure(t *testing.T) {
	f := newReloaderFixture(t)
	f.watcher.EXPECT().Start(gomock.Any(), f.dir).Return(context.Canceled)

	err := f.reloader.Run(t.Context(), f.watcher)
	require.ErrorIs(t, err, context.Canceled)
}
