package lookup

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Result is a resolved lookup.
type Result struct {
	Key    domain.QueryKey
	Entry  domain.LookupEntry
	Cached bool
}

// Resolver answers location lookups from the store or by geocoding and narrating.
// Concurrent lookups of the same key share one narrative call.
type Resolver struct {
	store    ports.LookupStore
	narrator ports.Narrator
	geocoder ports.Geocoder
	tracer   ports.Tracer
	metrics  ports.Metrics
	provider string
	bucket   int
	timeout  time.Duration
	group    singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTracer wraps every network resolution in a span.
func WithTracer(t ports.Tracer) Option {
	return func(r *Resolver) { r.tracer = t }
}

// WithMetrics reports lookup outcomes and narrator latency.
func WithMetrics(m ports.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// WithBucketSize sets the year quantization of cache keys.
func WithBucketSize(size int) Option {
	return func(r *Resolver) { r.bucket = size }
}

// WithTimeout bounds one geocode plus narrate round trip.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// WithProvider labels narrator metrics.
func WithProvider(name string) Option {
	return func(r *Resolver) { r.provider = name }
}

// NewResolver creates a Resolver.
func NewResolver(store ports.LookupStore, narrator ports.Narrator, geocoder ports.Geocoder, opts ...Option) *Resolver {
	r := &Resolver{
		store:    store,
		narrator: narrator,
		geocoder: geocoder,
		tracer:   noopTracer{},
		metrics:  noopMetrics{},
		provider: domain.ProviderAnthropic,
		bucket:   domain.DefaultBucketSize,
		timeout:  domain.DefaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key quantizes a location and year with the resolver's bucket size.
func (r *Resolver) Key(p domain.GeoPoint, y domain.Year) domain.QueryKey {
	return domain.NewQueryKey(p, y, r.bucket)
}

// Cached returns the stored entry for key. Store errors count as a miss.
func (r *Resolver) Cached(ctx context.Context, key domain.QueryKey) (domain.LookupEntry, bool) {
	entry, err := r.store.Get(ctx, key)
	if err != nil {
		return domain.LookupEntry{}, false
	}
	return entry, true
}

// Lookup answers from the store when possible and otherwise resolves over the network.
// Failures are never stored.
func (r *Resolver) Lookup(ctx context.Context, p domain.GeoPoint, y domain.Year) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	key := r.Key(p, y)
	if entry, ok := r.Cached(ctx, key); ok {
		r.metrics.LookupServed(ports.LookupSourceCache)
		return Result{Key: key, Entry: entry, Cached: true}, nil
	}
	entry, err := r.Resolve(ctx, key, p, y)
	if err != nil {
		return Result{Key: key}, err
	}
	return Result{Key: key, Entry: entry}, nil
}

// Resolve geocodes and narrates key, bypassing the cache read.
// Concurrent calls for the same key are coalesced. The shared call is detached
// from every caller's cancellation and bounded only by the resolver timeout, so a
// caller that gives up returns ctx.Err() without failing the others.
func (r *Resolver) Resolve(ctx context.Context, key domain.QueryKey, p domain.GeoPoint, y domain.Year) (domain.LookupEntry, error) {
	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key.String(), func() (any, error) {
		return r.resolve(shared, key, p, y)
	})
	select {
	case <-ctx.Done():
		return domain.LookupEntry{}, zerr.With(zerr.Wrap(ctx.Err(), "lookup abandoned"), "key", key.String())
	case res := <-ch:
		if res.Err != nil {
			return domain.LookupEntry{}, res.Err
		}
		entry, _ := res.Val.(domain.LookupEntry)
		return entry, nil
	}
}

func (r *Resolver) resolve(ctx context.Context, key domain.QueryKey, p domain.GeoPoint, y domain.Year) (domain.LookupEntry, error) {
	ctx, span := r.tracer.Start(ctx, "lookup.resolve", ports.WithAttributes(map[string]any{
		"lookup.key":  key.String(),
		"lookup.year": int(y),
	}))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	place := r.geocoder.ReverseGeocode(ctx, p)
	span.SetAttribute("lookup.place", place)

	start := time.Now()
	text, err := r.narrator.Narrate(ctx, Prompt(place, p, y))
	r.metrics.NarratorLatency(r.provider, time.Since(start))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = zerr.With(zerr.Wrap(domain.ErrLookupTimeout, err.Error()), "timeout", r.timeout.String())
		}
		span.RecordError(err)
		r.metrics.LookupServed(ports.LookupSourceFailed)
		return domain.LookupEntry{}, err
	}

	entry := domain.LookupEntry{PlaceName: place, Narrative: text, Year: y}
	if err := r.store.Put(context.WithoutCancel(ctx), key, entry); err != nil {
		// The narrative is still served; the next lookup simply misses.
		span.RecordError(err)
	}
	r.metrics.LookupServed(ports.LookupSourceNetwork)
	return entry, nil
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}

type noopMetrics struct{}

func (noopMetrics) LookupServed(string)                    {}
func (noopMetrics) NarratorLatency(string, time.Duration) {}
func (noopMetrics) FrameRendered(int, time.Duration)      {}
