package ports

import (
	"context"

	"go.trai.ch/atlas/internal/core/domain"
)

// LookupStore holds resolved location lookups for the lifetime of a session.
//
//go:generate mockgen -source=lookup_store.go -destination=mocks/mock_lookup_store.go -package=mocks
type LookupStore interface {
	// Get returns the entry for key or domain.ErrCacheMiss.
	Get(ctx context.Context, key domain.QueryKey) (domain.LookupEntry, error)
	// Put stores a successful lookup.
	Put(ctx context.Context, key domain.QueryKey, entry domain.LookupEntry) error
	// Clear drops every entry.
	Clear(ctx context.Context) error
}
