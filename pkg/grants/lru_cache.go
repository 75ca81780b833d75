package grants

import (
	"context"
	"time"

	"github.com/dmitrymomot/authzkit/pkg/cache"
)

// lruCache keeps grant sets in process memory with an LRU bound and TTL.
// Suited for single-node deployments; multi-node setups should prefer the
// Redis backend so invalidations are visible everywhere.
type lruCache struct {
	c *cache.TTLCache[string, Set]
}

// NewLRUCache creates an in-process cache holding up to capacity roles,
// each entry expiring after ttl.
func NewLRUCache(capacity int, ttl time.Duration) Cache {
	return &lruCache{c: cache.NewTTLCache[string, Set](capacity, ttl)}
}

func (l *lruCache) Get(ctx context.Context, role string) (Set, bool) {
	set, ok := l.c.Get(role)
	if !ok {
		return nil, false
	}
	return set.Clone(), true
}

func (l *lruCache) Set(ctx context.Context, role string, set Set) error {
	l.c.Put(role, set.Clone())
	return nil
}

func (l *lruCache) Delete(ctx context.Context, role string) error {
	l.c.Remove(role)
	return nil
}
