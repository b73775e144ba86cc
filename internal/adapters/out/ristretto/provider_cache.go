// Package ristretto keeps recently resolved providers in an in-process
// ristretto cache in front of the provider directory.
package ristretto

import (
	"context"
	"time"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"
	"harvest/internal/core/ports"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 5 * time.Minute

// ProviderCache decorates a ports.ProviderDirectory. Only successful lookups
// are cached; misses and errors always reach the underlying directory.
type ProviderCache struct {
	next  ports.ProviderDirectory
	cache *ristretto.Cache[string, *provider.Provider]
	ttl   time.Duration
}

var _ ports.ProviderDirectory = (*ProviderCache)(nil)

// NewProviderCache creates a cache holding up to maxItems providers.
func NewProviderCache(next ports.ProviderDirectory, maxItems int64, ttl time.Duration) (*ProviderCache, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, *provider.Provider]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &ProviderCache{next: next, cache: c, ttl: ttl}, nil
}

// Get returns the cached provider or loads it from the directory.
func (c *ProviderCache) Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	key := id.String()
	if p, found := c.cache.Get(key); found {
		return p, nil
	}

	p, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(key, p, 1, c.ttl)
	c.cache.Wait()
	return p, nil
}

// Close shuts down the cache and releases resources.
func (c *ProviderCache) Close() {
	c.cache.Close()
}
