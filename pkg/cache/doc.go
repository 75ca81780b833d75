// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry TTL expiry.
//
// The cache evicts the least recently used item when capacity is exceeded
// and drops expired entries lazily on access, bounding both memory and
// staleness. Operations are O(1) and rely only on the standard library.
//
// Usage:
//
//	c := cache.NewTTLCache[string, Snapshot](1024, 30*time.Second)
//	c.Put("cashier", snap)
//	if snap, ok := c.Get("cashier"); ok {
//	    // fresh within TTL
//	}
//
// A zero TTL disables expiry, turning the cache into a plain LRU.
package cache
