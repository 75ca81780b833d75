package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/catalog"
)

func billingModule() catalog.Module {
	return catalog.Module{
		Code: "billing",
		Name: "Billing",
		Actions: []catalog.Action{
			{Code: catalog.ViewAction, Name: "View module"},
			{Code: "export", Name: "Export"},
			{Code: "own_site", Name: "Own site only", Group: "coverage"},
			{Code: "all_sites", Name: "All sites", Group: "coverage"},
			{Code: "custom", Name: "Custom sites", Group: "coverage"},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modules []catalog.Module
		wantErr bool
	}{
		{
			name:    "valid single module",
			modules: []catalog.Module{billingModule()},
		},
		{
			name:    "empty catalog",
			modules: nil,
		},
		{
			name: "empty module code",
			modules: []catalog.Module{{
				Code:    "",
				Actions: []catalog.Action{{Code: catalog.ViewAction}},
			}},
			wantErr: true,
		},
		{
			name:    "duplicate module",
			modules: []catalog.Module{billingModule(), billingModule()},
			wantErr: true,
		},
		{
			name: "duplicate action",
			modules: []catalog.Module{{
				Code: "pos",
				Actions: []catalog.Action{
					{Code: catalog.ViewAction},
					{Code: "sell"},
					{Code: "sell"},
				},
			}},
			wantErr: true,
		},
		{
			name: "missing master switch",
			modules: []catalog.Module{{
				Code:    "pos",
				Actions: []catalog.Action{{Code: "sell"}},
			}},
			wantErr: true,
		},
		{
			name: "master switch inside a group",
			modules: []catalog.Module{{
				Code:    "pos",
				Actions: []catalog.Action{{Code: catalog.ViewAction, Group: "scope"}},
			}},
			wantErr: true,
		},
		{
			name: "empty action code",
			modules: []catalog.Module{{
				Code: "pos",
				Actions: []catalog.Action{
					{Code: catalog.ViewAction},
					{Code: ""},
				},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.New(tt.modules)
			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New([]catalog.Module{billingModule()})
	require.NoError(t, err)

	t.Run("known action", func(t *testing.T) {
		t.Parallel()

		a, err := cat.Lookup("billing", "own_site")
		require.NoError(t, err)
		assert.Equal(t, "coverage", a.Group)
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()

		_, err := cat.Lookup("inventory", "export")
		assert.ErrorIs(t, err, catalog.ErrUnknownModule)
	})

	t.Run("unknown action", func(t *testing.T) {
		t.Parallel()

		_, err := cat.Lookup("billing", "refund")
		assert.ErrorIs(t, err, catalog.ErrUnknownAction)
	})
}

func TestCatalog_Groups(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New([]catalog.Module{billingModule()})
	require.NoError(t, err)

	groups, err := cat.Groups("billing")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "coverage", groups[0].Name)
	assert.Equal(t, []string{"own_site", "all_sites", "custom"}, groups[0].Actions)

	siblings, err := cat.Group("billing", "coverage")
	require.NoError(t, err)
	assert.Equal(t, []string{"own_site", "all_sites", "custom"}, siblings)

	_, err = cat.Group("billing", "promotions")
	assert.ErrorIs(t, err, catalog.ErrUnknownGroup)

	_, err = cat.Groups("inventory")
	assert.ErrorIs(t, err, catalog.ErrUnknownModule)
}

func TestCatalog_Actions(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New([]catalog.Module{billingModule()})
	require.NoError(t, err)

	actions, err := cat.Actions("billing")
	require.NoError(t, err)
	assert.Len(t, actions, 5)
	assert.Equal(t, catalog.ViewAction, actions[0].Code)

	_, err = cat.Actions("inventory")
	assert.ErrorIs(t, err, catalog.ErrUnknownModule)
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		catalog.MustNew([]catalog.Module{{Code: "pos"}})
	})
}
