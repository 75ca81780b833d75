package grants

import (
	"context"
	"errors"
)

// Cache is the interface for grant-set caching backends.
type Cache interface {
	// Get retrieves a cached grant set for the role.
	Get(ctx context.Context, role string) (Set, bool)

	// Set stores the grant set for the role.
	Set(ctx context.Context, role string, set Set) error

	// Delete drops the cached grant set for the role.
	Delete(ctx context.Context, role string) error
}

// NoOpCache disables caching, useful for testing or when caching is unwanted.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, role string) (Set, bool) { return nil, false }
func (NoOpCache) Set(ctx context.Context, role string, set Set) error { return nil }
func (NoOpCache) Delete(ctx context.Context, role string) error       { return nil }

// CachedStore is a read-through decorator around a Store. Reads are served
// from the cache when possible; every successful write drops the role's
// cached entry so the next read reflects the new truth.
type CachedStore struct {
	store Store
	cache Cache
}

// NewCachedStore wraps store with the given cache backend.
func NewCachedStore(store Store, cache Cache) *CachedStore {
	if cache == nil {
		cache = NoOpCache{}
	}
	return &CachedStore{store: store, cache: cache}
}

func (s *CachedStore) GrantSet(ctx context.Context, role string) (Set, error) {
	if set, ok := s.cache.Get(ctx, role); ok {
		return set, nil
	}

	set, err := s.store.GrantSet(ctx, role)
	if err != nil {
		return nil, err
	}

	// Population failures are not fatal: the store already answered.
	_ = s.cache.Set(ctx, role, set)

	return set, nil
}

func (s *CachedStore) Apply(ctx context.Context, role string, writes []Write) error {
	if err := s.store.Apply(ctx, role, writes); err != nil {
		return err
	}

	// The write is durable at this point. A failed invalidation means reads
	// may serve stale grants until the cache entry expires, so the caller
	// must hear about it even though the intent itself took effect.
	if err := s.cache.Delete(ctx, role); err != nil {
		return errors.Join(ErrCacheInvalidation, err)
	}

	return nil
}
