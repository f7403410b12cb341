// Package lookup implements the debounced, cache-coalesced location lookup pipeline.
package lookup

import (
	"context"
	"sync"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache is an in-memory ports.LookupStore.
// Entries live until Clear; there is no eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.QueryKey]domain.LookupEntry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[domain.QueryKey]domain.LookupEntry)}
}

// Get returns the entry for key or domain.ErrCacheMiss.
func (c *Cache) Get(_ context.Context, key domain.QueryKey) (domain.LookupEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return domain.LookupEntry{}, zerr.With(zerr.Wrap(domain.ErrCacheMiss, "lookup cache"), "key", key.String())
	}
	return entry, nil
}

// Put stores entry under key, replacing any previous value.
func (c *Cache) Put(_ context.Context, key domain.QueryKey, entry domain.LookupEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry
	return nil
}

// Clear drops every entry.
func (c *Cache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
