package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/catalog"
)

const validCatalogYAML = `
modules:
  - code: billing
    name: Billing
    actions:
      - code: ver_modulo
        name: View module
      - code: export
        name: Export
      - code: own_site
        name: Own site only
        group: coverage
      - code: all_sites
        name: All sites
        group: coverage
  - code: pos
    name: Point of sale
    actions:
      - code: ver_modulo
        name: View module
      - code: sell
        name: Sell
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		cat, err := catalog.Parse(strings.NewReader(validCatalogYAML))
		require.NoError(t, err)

		assert.Len(t, cat.Modules(), 2)

		siblings, err := cat.Group("billing", "coverage")
		require.NoError(t, err)
		assert.Equal(t, []string{"own_site", "all_sites"}, siblings)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Parse(strings.NewReader("modules: ["))
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Parse(strings.NewReader("roles:\n  - admin\n"))
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})

	t.Run("semantic validation applies", func(t *testing.T) {
		t.Parallel()

		doc := "modules:\n  - code: pos\n    actions:\n      - code: sell\n"
		_, err := catalog.Parse(strings.NewReader(doc))
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validCatalogYAML), 0o600))

		cat, err := catalog.LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, cat.Modules(), 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})
}
