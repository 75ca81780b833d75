package grants

import "errors"

// Domain errors for grant storage.
var (
	// ErrStoreUnavailable wraps transient backend faults. Callers must treat
	// it as "not granted", never as an implicit allow.
	ErrStoreUnavailable = errors.New("grants.store_unavailable")

	// ErrCacheInvalidation is returned when a write succeeded but the cached
	// grant set for the role could not be dropped; callers should retry the
	// invalidation or wait out the cache TTL before trusting reads.
	ErrCacheInvalidation = errors.New("grants.cache_invalidation_failed")
)
