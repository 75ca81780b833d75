package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/config"
)

type testConfig struct {
	Name    string        `env:"LOADER_TEST_NAME" envDefault:"authz"`
	Timeout time.Duration `env:"LOADER_TEST_TIMEOUT" envDefault:"15s"`
	Roles   []string      `env:"LOADER_TEST_ROLES" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"LOADER_TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("LOADER_TEST_NAME", "engine")
	t.Setenv("LOADER_TEST_ROLES", "superadmin,ops")

	cfg, err := config.Load[testConfig]()
	require.NoError(t, err)
	assert.Equal(t, "engine", cfg.Name)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"superadmin", "ops"}, cfg.Roles)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("LOADER_TEST_NAME", "first")

	first, err := config.Load[testConfig]()
	require.NoError(t, err)

	// Changing the environment after the first load has no effect: the
	// parsed value is cached per type for the process lifetime.
	t.Setenv("LOADER_TEST_NAME", "second")
	second, err := config.Load[testConfig]()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := config.Load[requiredConfig]()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoad[requiredConfig]()
	})
}
