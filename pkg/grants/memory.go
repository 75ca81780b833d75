package grants

import (
	"context"
	"sync"
)

// memoryStore is an in-process Store for tests and single-node deployments.
// A single mutex serializes writes, which trivially satisfies the
// linearizability requirement for same-role intents.
type memoryStore struct {
	mu    sync.RWMutex
	roles map[string]Set
}

// NewMemoryStore creates an empty in-memory grant store.
func NewMemoryStore() Store {
	return &memoryStore{roles: make(map[string]Set)}
}

func (s *memoryStore) GrantSet(ctx context.Context, role string) (Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.roles[role]
	if !ok {
		return make(Set), nil
	}
	return set.Clone(), nil
}

func (s *memoryStore) Apply(ctx context.Context, role string, writes []Write) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(writes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.roles[role]
	if !ok {
		set = make(Set)
		s.roles[role] = set
	}

	for _, w := range writes {
		if w.Granted {
			set[w.Key] = struct{}{}
		} else {
			delete(set, w.Key)
		}
	}

	return nil
}
