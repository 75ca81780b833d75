package grants

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces grant-set entries in a shared Redis instance.
const redisKeyPrefix = "authz:grants:"

// redisCache shares grant sets across nodes via Redis. Entries expire after
// the configured TTL; writes through CachedStore delete them eagerly.
type redisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

type cachedGrant struct {
	Module string `json:"module"`
	Action string `json:"action"`
}

// NewRedisCache creates a Redis-backed grant-set cache with the given TTL.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (r *redisCache) Get(ctx context.Context, role string) (Set, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+role).Bytes()
	if err != nil {
		// Misses and transient faults read the same way: fall through to the store.
		return nil, false
	}

	var entries []cachedGrant
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}

	set := make(Set, len(entries))
	for _, e := range entries {
		set.Add(e.Module, e.Action)
	}
	return set, true
}

func (r *redisCache) Set(ctx context.Context, role string, set Set) error {
	entries := make([]cachedGrant, 0, len(set))
	for k := range set {
		entries = append(entries, cachedGrant{Module: k.Module, Action: k.Action})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, redisKeyPrefix+role, raw, r.ttl).Err()
}

func (r *redisCache) Delete(ctx context.Context, role string) error {
	return r.client.Del(ctx, redisKeyPrefix+role).Err()
}
