package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authzkit/pkg/authz"
)

func TestRoleContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, ok := authz.GetRoleFromContext(ctx)
	assert.False(t, ok)

	ctx = authz.SetRoleToContext(ctx, "cashier")
	role, ok := authz.GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "cashier", role)

	// Later values shadow earlier ones.
	ctx = authz.SetRoleToContext(ctx, "manager")
	role, ok = authz.GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "manager", role)
}
