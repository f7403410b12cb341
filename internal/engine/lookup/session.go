package lookup

import (
	"context"
	"time"

	"go.trai.ch/atlas/internal/core/domain"
)

const eventBuffer = 64

// Trigger is a map event that may start a lookup: a zoom, a pan or a year change.
type Trigger struct {
	Center domain.GeoPoint
	Zoom   int
	Year   domain.Year
}

// Session is the lookup state machine of one map view.
// All state is owned by the goroutine running Run; callers interact through
// Trigger and Hide, which enqueue events on a single channel.
type Session struct {
	resolver  *Resolver
	debounce  time.Duration
	threshold int
	onUpdate  func(domain.LookupUpdate)

	events chan any
	done   chan struct{}
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDebounce sets the quiet period before a lookup fires.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) { s.debounce = d }
}

// WithZoomThreshold sets the minimum zoom level at which lookups run.
func WithZoomThreshold(z int) SessionOption {
	return func(s *Session) { s.threshold = z }
}

// WithOnUpdate registers the consumer of state changes. It is called from the Run goroutine.
func WithOnUpdate(fn func(domain.LookupUpdate)) SessionOption {
	return func(s *Session) { s.onUpdate = fn }
}

// NewSession creates a Session. Run must be called before triggers are processed.
func NewSession(resolver *Resolver, opts ...SessionOption) *Session {
	s := &Session{
		resolver:  resolver,
		debounce:  domain.DefaultDebounce,
		threshold: domain.DefaultZoomThreshold,
		onUpdate:  func(domain.LookupUpdate) {},
		events:    make(chan any, eventBuffer),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type (
	hideEvent   struct{}
	fireEvent   struct{ seq uint64 }
	resultEvent struct {
		gen   uint64
		key   domain.QueryKey
		entry domain.LookupEntry
		err   error
	}
)

// Trigger enqueues a map event. It returns ctx.Err() if ctx ends first and
// is a no-op once the session has stopped.
func (s *Session) Trigger(ctx context.Context, t Trigger) error {
	return s.send(ctx, t)
}

// Hide closes the panel and forgets the last query so the same place can be looked up again.
func (s *Session) Hide(ctx context.Context) error {
	return s.send(ctx, hideEvent{})
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) send(ctx context.Context, ev any) error {
	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sessionState is owned by Run.
type sessionState struct {
	state   domain.LookupState
	settled domain.LookupState
	pending Trigger
	timer   *time.Timer
	seq     uint64
	gen     uint64
	lastKey domain.QueryKey
	hasLast bool
}

// Run processes events until ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	defer close(s.done)

	st := &sessionState{}
	defer func() {
		if st.timer != nil {
			st.timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			switch e := ev.(type) {
			case Trigger:
				s.onTrigger(ctx, st, e)
			case hideEvent:
				s.hide(st)
			case fireEvent:
				if e.seq == st.seq {
					s.fire(ctx, st)
				}
			case resultEvent:
				s.onResult(st, e)
			}
		}
	}
}

func (s *Session) onTrigger(ctx context.Context, st *sessionState, t Trigger) {
	if t.Zoom < s.threshold {
		s.hide(st)
		return
	}

	key := s.resolver.Key(t.Center, t.Year)
	if st.hasLast && st.lastKey == key && (st.state == domain.LookupResolved || st.state == domain.LookupInFlight) {
		s.stopTimer(st)
		return
	}
	if entry, ok := s.resolver.Cached(ctx, key); ok {
		s.stopTimer(st)
		st.gen++
		s.resolved(st, key, entry)
		return
	}

	s.stopTimer(st)
	st.pending = t
	seq := st.seq
	st.timer = time.AfterFunc(s.debounce, func() {
		select {
		case s.events <- fireEvent{seq: seq}:
		case <-s.done:
		}
	})
	if st.state != domain.LookupPendingDebounce {
		st.settled = st.state
		st.state = domain.LookupPendingDebounce
		s.onUpdate(domain.LookupUpdate{State: st.state, Key: key})
	}
}

func (s *Session) fire(ctx context.Context, st *sessionState) {
	st.timer = nil
	t := st.pending
	key := s.resolver.Key(t.Center, t.Year)

	if st.hasLast && st.lastKey == key {
		// Already showing or fetching this key.
		st.state = st.settled
		return
	}
	st.lastKey, st.hasLast = key, true

	if entry, ok := s.resolver.Cached(ctx, key); ok {
		st.gen++
		s.resolved(st, key, entry)
		return
	}

	st.gen++
	gen := st.gen
	st.state = domain.LookupInFlight
	s.onUpdate(domain.LookupUpdate{State: st.state, Key: key})

	go func() {
		entry, err := s.resolver.Resolve(ctx, key, t.Center, t.Year)
		select {
		case s.events <- resultEvent{gen: gen, key: key, entry: entry, err: err}:
		case <-s.done:
		}
	}()
}

func (s *Session) onResult(st *sessionState, r resultEvent) {
	if r.gen != st.gen {
		// A newer query owns the panel. Successful stale results are already stored.
		return
	}
	if r.err != nil {
		st.state = domain.LookupFailed
		st.hasLast = false
		s.onUpdate(domain.LookupUpdate{State: st.state, Key: r.key, Err: r.err})
		return
	}
	s.resolved(st, r.key, r.entry)
}

func (s *Session) resolved(st *sessionState, key domain.QueryKey, entry domain.LookupEntry) {
	st.state = domain.LookupResolved
	st.lastKey, st.hasLast = key, true
	s.onUpdate(domain.LookupUpdate{
		State: st.state,
		Key:   key,
		Entry: entry,
		HTML:  FormatNarrative(entry.Narrative),
	})
}

func (s *Session) hide(st *sessionState) {
	s.stopTimer(st)
	st.gen++
	st.hasLast = false
	if st.state != domain.LookupIdle {
		st.state = domain.LookupIdle
		s.onUpdate(domain.LookupUpdate{State: st.state})
	}
}

func (s *Session) stopTimer(st *sessionState) {
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	st.seq++
}
