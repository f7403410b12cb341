package lookup_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/atlas/internal/core/ports/mocks"
	"go.trai.ch/atlas/internal/engine/lookup"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var athens = domain.GeoPoint{Lat: 37.9838, Lng: 23.7275}

func TestResolver_Lookup_CachesSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	narrator := mocks.NewMockNarrator(ctrl)
	geocoder := mocks.NewMockGeocoder(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)
	cache := lookup.NewCache()

	geocoder.EXPECT().ReverseGeocode(gomock.Any(), athens).Return("Athens, Greece")
	narrator.EXPECT().
		Narrate(gomock.Any(), lookup.Prompt("Athens, Greece", athens, -430)).
		Return("* Pericles leads the city", nil)
	metrics.EXPECT().NarratorLatency(domain.ProviderGemini, gomock.Any())
	metrics.EXPECT().LookupServed(ports.LookupSourceNetwork)
	metrics.EXPECT().LookupServed(ports.LookupSourceCache)

	r := lookup.NewResolver(cache, narrator, geocoder,
		lookup.WithMetrics(metrics),
		lookup.WithProvider(domain.ProviderGemini),
	)

	first, err := r.Lookup(t.Context(), athens, -430)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "Athens, Greece", first.Entry.PlaceName)
	assert.Equal(t, domain.Year(-430), first.Entry.Year)

	// Same rounded coordinates and year bucket.
	second, err := r.Lookup(t.Context(), domain.GeoPoint{Lat: 37.9811, Lng: 23.7301}, -440)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, first.Entry, second.Entry)
}

func TestResolver_Lookup_FailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	narrator := mocks.NewMockNarrator(ctrl)
	geocoder := mocks.NewMockGeocoder(ctrl)
	cache := lookup.NewCache()

	geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).Return("Athens").Times(2)
	gomock.InOrder(
		narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).
			Return("", zerr.With(zerr.Wrap(domain.ErrRateLimited, "narrate"), "status_code", 429)),
		narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).Return("Recovered", nil),
	)

	r := lookup.NewResolver(cache, narrator, geocoder)

	_, err := r.Lookup(t.Context(), athens, 0)
	require.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Equal(t, 0, cache.Len())

	res, err := r.Lookup(t.Context(), athens, 0)
	require.NoError(t, err)
	assert.Equal(t, "Recovered", res.Entry.Narrative)
	assert.Equal(t, 1, cache.Len())
}

func TestResolver_Lookup_InvalidPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := lookup.NewResolver(lookup.NewCache(), mocks.NewMockNarrator(ctrl), mocks.NewMockGeocoder(ctrl))

	_, err := r.Lookup(t.Context(), domain.GeoPoint{Lat: 120, Lng: 0}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
}

func TestResolver_Lookup_Timeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		narrator := mocks.NewMockNarrator(ctrl)
		geocoder := mocks.NewMockGeocoder(ctrl)
		cache := lookup.NewCache()

		geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).Return("Athens")
		narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", zerr.Wrap(ctx.Err(), domain.ErrNetwork.Error())
			})

		r := lookup.NewResolver(cache, narrator, geocoder, lookup.WithTimeout(2*time.Second))

		start := time.Now()
		_, err := r.Lookup(t.Context(), athens, 0)
		require.ErrorIs(t, err, domain.ErrLookupTimeout)
		assert.Equal(t, 2*time.Second, time.Since(start))
		assert.Equal(t, 0, cache.Len())
	})
}

func TestResolver_Resolve_CoalescesConcurrentCalls(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		narrator := mocks.NewMockNarrator(ctrl)
		geocoder := mocks.NewMockGeocoder(ctrl)
		release := make(chan struct{})

		geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).Return("Athens").Times(1)
		narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string) (string, error) {
				<-release
				return "Shared", nil
			}).Times(1)

		r := lookup.NewResolver(lookup.NewCache(), narrator, geocoder)
		key := r.Key(athens, 0)

		results := make(chan domain.LookupEntry, 2)
		for range 2 {
			go func() {
				entry, err := r.Resolve(t.Context(), key, athens, 0)
				assert.NoError(t, err)
				results <- entry
			}()
			synctest.Wait()
		}

		close(release)
		assert.Equal(t, "Shared", (<-results).Narrative)
		assert.Equal(t, "Shared", (<-results).Narrative)
	})
}

func TestResolver_Resolve_CancelledCallerDoesNotFailOthers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		narrator := mocks.NewMockNarrator(ctrl)
		geocoder := mocks.NewMockGeocoder(ctrl)
		cache := lookup.NewCache()

		geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).Return("Athens").Times(1)
		narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string) (string, error) {
				select {
				case <-time.After(200 * time.Millisecond):
					return "Shared", nil
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}).Times(1)

		r := lookup.NewResolver(cache, narrator, geocoder)
		key := r.Key(athens, 0)

		firstCtx, cancelFirst := context.WithCancel(t.Context())
		firstErr := make(chan error, 1)
		go func() {
			_, err := r.Resolve(firstCtx, key, athens, 0)
			firstErr <- err
		}()
		synctest.Wait()

		second := make(chan domain.LookupEntry, 1)
		go func() {
			entry, err := r.Resolve(context.Background(), key, athens, 0)
			assert.NoError(t, err)
			second <- entry
		}()
		synctest.Wait()

		cancelFirst()
		require.ErrorIs(t, <-firstErr, context.Canceled)

		assert.Equal(t, "Shared", (<-second).Narrative)
		assert.Equal(t, 1, cache.Len())
	})
}

func TestResolver_Lookup_TracesResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	narrator := mocks.NewMockNarrator(ctrl)
	geocoder := mocks.NewMockGeocoder(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).Return("Athens")
	narrator.EXPECT().Narrate(gomock.Any(), gomock.Any()).Return("", domain.ErrEmptyResponse)
	tracer.EXPECT().Start(gomock.Any(), "lookup.resolve", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().SetAttribute("lookup.place", "Athens")
	span.EXPECT().RecordError(domain.ErrEmptyResponse)
	span.EXPECT().End()

	r := lookup.NewResolver(lookup.NewCache(), narrator, geocoder, lookup.WithTracer(tracer))

	_, err := r.Lookup(t.Context(), athens, 0)
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}
