package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/logger"
)

func TestNew_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "authz")),
	)

	log.Info("intent applied", logger.Role("cashier"), logger.Module("billing"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "intent applied", record["msg"])
	assert.Equal(t, "authz", record["service"])
	assert.Equal(t, "cashier", record["role"])
	assert.Equal(t, "billing", record["module"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("ignored")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithFormat_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	type roleKey struct{}

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithOutput(&buf),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if role, ok := ctx.Value(roleKey{}).(string); ok {
				return logger.Role(role), true
			}
			return slog.Attr{}, false
		}),
	)

	ctx := context.WithValue(context.Background(), roleKey{}, "manager")
	log.InfoContext(ctx, "resolved")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "manager", record["role"])

	// Without the context value the attribute is absent.
	buf.Reset()
	log.Info("resolved")
	plain := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &plain))
	assert.NotContains(t, plain, "role")
}

func TestError_NilYieldsEmptyAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}
