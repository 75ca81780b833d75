package grants_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/grants"
)

func TestMemoryStore_GrantSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := grants.NewMemoryStore()

	t.Run("unknown role yields empty set", func(t *testing.T) {
		set, err := store.GrantSet(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("returned set is a copy", func(t *testing.T) {
		err := store.Apply(ctx, "cashier", []grants.Write{
			{Key: grants.Key{Module: "billing", Action: "export"}, Granted: true},
		})
		require.NoError(t, err)

		set, err := store.GrantSet(ctx, "cashier")
		require.NoError(t, err)
		set.Add("billing", "refund")

		again, err := store.GrantSet(ctx, "cashier")
		require.NoError(t, err)
		assert.False(t, again.Has("billing", "refund"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.GrantSet(cancelled, "cashier")
		assert.Error(t, err)
	})
}

func TestMemoryStore_Apply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("batch lands as a unit", func(t *testing.T) {
		t.Parallel()

		store := grants.NewMemoryStore()
		err := store.Apply(ctx, "cashier", []grants.Write{
			{Key: grants.Key{Module: "billing", Action: "own_site"}, Granted: true},
			{Key: grants.Key{Module: "billing", Action: "all_sites"}, Granted: false},
			{Key: grants.Key{Module: "billing", Action: "custom"}, Granted: false},
		})
		require.NoError(t, err)

		set, err := store.GrantSet(ctx, "cashier")
		require.NoError(t, err)
		assert.True(t, set.Has("billing", "own_site"))
		assert.False(t, set.Has("billing", "all_sites"))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		store := grants.NewMemoryStore()
		writes := []grants.Write{
			{Key: grants.Key{Module: "billing", Action: "export"}, Granted: true},
		}
		require.NoError(t, store.Apply(ctx, "cashier", writes))
		require.NoError(t, store.Apply(ctx, "cashier", writes))

		set, err := store.GrantSet(ctx, "cashier")
		require.NoError(t, err)
		assert.Len(t, set, 1)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()

		store := grants.NewMemoryStore()
		require.NoError(t, store.Apply(ctx, "cashier", nil))

		set, err := store.GrantSet(ctx, "cashier")
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("concurrent writers to different roles", func(t *testing.T) {
		t.Parallel()

		store := grants.NewMemoryStore()
		const numRoles = 50

		var wg sync.WaitGroup
		wg.Add(numRoles)
		for i := 0; i < numRoles; i++ {
			go func(i int) {
				defer wg.Done()
				role := fmt.Sprintf("role-%d", i)
				err := store.Apply(ctx, role, []grants.Write{
					{Key: grants.Key{Module: "billing", Action: "export"}, Granted: true},
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		for i := 0; i < numRoles; i++ {
			set, err := store.GrantSet(ctx, fmt.Sprintf("role-%d", i))
			require.NoError(t, err)
			assert.True(t, set.Has("billing", "export"))
		}
	})
}

func TestSet_Clone(t *testing.T) {
	t.Parallel()

	set := make(grants.Set)
	set.Add("billing", "export")

	clone := set.Clone()
	clone.Add("billing", "refund")

	assert.True(t, clone.Has("billing", "export"))
	assert.False(t, set.Has("billing", "refund"))
}
