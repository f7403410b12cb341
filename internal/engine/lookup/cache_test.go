package lookup_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/engine/lookup"
)

func TestCache_GetPutClear(t *testing.T) {
	ctx := t.Context()
	c := lookup.NewCache()
	key := domain.NewQueryKey(domain.GeoPoint{Lat: 41.01, Lng: 28.98}, 1453, 50)

	_, err := c.Get(ctx, key)
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	entry := domain.LookupEntry{PlaceName: "Istanbul", Narrative: "Siege", Year: 1453}
	require.NoError(t, c.Put(ctx, key, entry))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Len())
	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	ctx := t.Context()
	c := lookup.NewCache()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			key := domain.NewQueryKey(domain.GeoPoint{Lat: float64(i), Lng: 0}, 0, 50)
			_ = c.Put(ctx, key, domain.LookupEntry{PlaceName: "p"})
			_, _ = c.Get(ctx, key)
		})
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}
