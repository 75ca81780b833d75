package grants

import "context"

// Key identifies a single grant row within a role: one (module, action) pair.
type Key struct {
	Module string
	Action string
}

// Write is one element of an atomic write batch.
type Write struct {
	Key
	Granted bool
}

// Set is the set of true grants for one role. Absent keys read as false.
type Set map[Key]struct{}

// Has reports whether the (module, action) grant is true.
func (s Set) Has(module, action string) bool {
	_, ok := s[Key{Module: module, Action: action}]
	return ok
}

// Add marks the (module, action) grant as true.
func (s Set) Add(module, action string) {
	s[Key{Module: module, Action: action}] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Store persists per-role grant state. It is the only mutable state of the
// authorization engine and must only be written through the engine's intent
// API; callers never talk to a Store directly.
type Store interface {
	// GrantSet returns every true grant for the role in one batch read.
	// An unknown role yields an empty set, not an error.
	GrantSet(ctx context.Context, role string) (Set, error)

	// Apply commits all writes for the role as one atomic unit: either every
	// write takes effect or none does. Setting a grant to its current value
	// is a no-op. Apply calls for the same role are linearizable with
	// respect to each other.
	Apply(ctx context.Context, role string, writes []Write) error
}
