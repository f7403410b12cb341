// Package rabbithole explores a topic and the related topics leading away from it.
package rabbithole

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

//go:embed seed.json
var seed []byte

// DefaultTimeout bounds one topic narration.
const DefaultTimeout = 30 * time.Second

// Explorer answers topics from its cache, the seed graph, the narrator and finally a
// generic fallback. It is safe for concurrent use.
type Explorer struct {
	seed     map[string]domain.Topic
	narrator ports.Narrator
	logger   ports.Logger
	timeout  time.Duration

	mu    sync.RWMutex
	cache map[string]domain.Topic
	group singleflight.Group
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithNarrator generates topics missing from the seed graph.
func WithNarrator(n ports.Narrator) Option {
	return func(e *Explorer) { e.narrator = n }
}

// WithLogger reports narration failures that were answered with the fallback.
func WithLogger(l ports.Logger) Option {
	return func(e *Explorer) { e.logger = l }
}

// WithTimeout bounds one narration.
func WithTimeout(d time.Duration) Option {
	return func(e *Explorer) { e.timeout = d }
}

// New creates an Explorer over the given seed topics.
func New(topics []domain.Topic, opts ...Option) *Explorer {
	e := &Explorer{
		seed:    make(map[string]domain.Topic, len(topics)),
		timeout: DefaultTimeout,
		cache:   make(map[string]domain.Topic),
	}
	for _, t := range topics {
		e.seed[key(t.Name)] = t
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Seed creates an Explorer over the knowledge graph built into the binary.
func Seed(opts ...Option) (*Explorer, error) {
	var doc struct {
		Topics []domain.Topic `json:"topics"`
	}
	if err := json.Unmarshal(seed, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatasetParse, err.Error()), "dataset", "rabbit holes")
	}
	return New(doc.Topics, opts...), nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Explore returns the topic called name. Seed and narrated topics are cached;
// the fallback is not. Concurrent narrations of one topic are coalesced and
// outlive a caller that gives up.
func (e *Explorer) Explore(ctx context.Context, name string) (domain.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Topic{}, zerr.Wrap(domain.ErrTopicRequired, "explore")
	}
	k := key(name)
	if t, ok := e.Cached(name); ok {
		return t, nil
	}
	if t, ok := e.seed[k]; ok {
		e.store(k, t)
		return t, nil
	}
	if e.narrator == nil {
		return Fallback(name), nil
	}

	shared := context.WithoutCancel(ctx)
	ch := e.group.DoChan(k, func() (any, error) {
		return e.narrate(shared, k, name)
	})
	select {
	case <-ctx.Done():
		return domain.Topic{}, zerr.With(zerr.Wrap(ctx.Err(), "exploration abandoned"), "topic", name)
	case res := <-ch:
		if res.Err != nil {
			if e.logger != nil {
				e.logger.Error(zerr.With(zerr.Wrap(res.Err, "topic narration failed"), "topic", name))
			}
			return Fallback(name), nil
		}
		t, _ := res.Val.(domain.Topic)
		return t, nil
	}
}

func (e *Explorer) narrate(ctx context.Context, k, name string) (domain.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.narrator.Narrate(ctx, Prompt(name))
	if err != nil {
		return domain.Topic{}, err
	}
	t, err := ParseTopic(name, text)
	if err != nil {
		return domain.Topic{}, err
	}
	e.store(k, t)
	return t, nil
}

// Cached returns a previously explored topic.
func (e *Explorer) Cached(name string) (domain.Topic, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.cache[key(name)]
	return t, ok
}

func (e *Explorer) store(k string, t domain.Topic) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache[k] = t
}

// Len returns the number of cached topics.
func (e *Explorer) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Fallback is the generic answer for a topic nothing else could explain.
func Fallback(name string) domain.Topic {
	return domain.Topic{
		Name:        name,
		Summary:     "Explore " + name + " and its connections to history.",
		Connections: []domain.Connection{},
		Fallback:    true,
	}
}
