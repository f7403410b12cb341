// Package redisstore implements ports.LookupStore on Redis so several servers share lookups.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultPrefix namespaces lookup keys.
	DefaultPrefix = "atlas:lookup:"
	// DefaultTTL bounds how long a narrative is reused.
	DefaultTTL = 7 * 24 * time.Hour

	scanBatch = 100
)

var _ ports.LookupStore = (*Store)(nil)

// Store keeps lookup entries as JSON strings.
type Store struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithTTL overrides DefaultTTL. Zero keeps entries forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// New creates a Store on rdb.
func New(rdb redis.Cmdable, opts ...Option) *Store {
	s := &Store{rdb: rdb, prefix: DefaultPrefix, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open connects to the Redis server named in cfg.
func Open(cfg domain.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
}

func (s *Store) key(k domain.QueryKey) string {
	return s.prefix + k.String()
}

// Get returns the entry stored under key or domain.ErrCacheMiss.
func (s *Store) Get(ctx context.Context, key domain.QueryKey) (domain.LookupEntry, error) {
	raw, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.LookupEntry{}, domain.ErrCacheMiss
	}
	if err != nil {
		return domain.LookupEntry{}, zerr.With(zerr.Wrap(err, "redis get failed"), "key", key.String())
	}

	var entry domain.LookupEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// A corrupt entry is treated as absent so the lookup is retried.
		return domain.LookupEntry{}, zerr.With(zerr.Wrap(domain.ErrCacheMiss, "corrupt entry"), "key", key.String())
	}
	return entry, nil
}

// Put stores entry under key.
func (s *Store) Put(ctx context.Context, key domain.QueryKey, entry domain.LookupEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return zerr.Wrap(err, "failed to encode lookup entry")
	}
	if err := s.rdb.Set(ctx, s.key(key), string(data), s.ttl).Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "redis set failed"), "key", key.String())
	}
	return nil
}

// Clear deletes every key under the store prefix.
func (s *Store) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, s.prefix+"*", scanBatch).Result()
		if err != nil {
			return zerr.Wrap(err, "redis scan failed")
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return zerr.Wrap(err, "redis del failed")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
