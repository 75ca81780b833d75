package authz_test

import (
	"context"

	"github.com/dmitrymomot/authzkit/pkg/grants"
)

// spyStore counts accesses and can be made to fail, backing the bypass and
// fail-closed tests. A nil inner store answers reads with an empty set.
type spyStore struct {
	inner    grants.Store
	reads    int
	applied  int
	readErr  error
	writeErr error
}

func (s *spyStore) GrantSet(ctx context.Context, role string) (grants.Set, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	if s.inner == nil {
		return make(grants.Set), nil
	}
	return s.inner.GrantSet(ctx, role)
}

func (s *spyStore) Apply(ctx context.Context, role string, writes []grants.Write) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.applied++
	if s.inner == nil {
		return nil
	}
	return s.inner.Apply(ctx, role, writes)
}
