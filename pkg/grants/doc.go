// Package grants persists per-role authorization grants: boolean
// (role, module, action) rows that default to false when absent.
//
// The Store interface exposes exactly two operations: a batch read of one
// role's true grants, and an atomic multi-key write. The atomic write is the
// load-bearing contract — a user-facing toggle that touches several rows
// (selecting one scope action and clearing its siblings) must land as a
// single unit so that no reader ever observes a half-applied toggle.
//
// Backends:
//
//   - NewMemoryStore: in-process, for tests and single-node use
//   - NewPostgresStore: one transaction per intent, per-role advisory lock
//   - NewMongoStore: one multi-document transaction per intent
//
// NewCachedStore decorates any backend with read-through caching of grant
// sets (in-process LRU+TTL or Redis), invalidated on every successful write
// for the affected role.
//
// This package stores state; it knows nothing about modules, master
// switches, or scope-group semantics. Those rules live in pkg/authz, which
// is the only sanctioned writer.
package grants
