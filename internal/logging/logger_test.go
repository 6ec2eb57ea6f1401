package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/findash/internal/logging"
)

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, logging.Config{Level: "warn", Format: logging.FormatJSON})

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, logging.Config{Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestComponentLogger_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ComponentLogger(logging.NewLogger(&buf, logging.Config{Level: "debug"}), "pager")
	logger.Debug().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pager", entry["component"])
}

func TestTraceID_StampedFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, logging.Config{Level: "info"})

	ctx := logging.ContextWithTraceID(context.Background(), "trace-123")
	logger.Info().Ctx(ctx).Msg("with trace")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestGetOrGenerateTraceID(t *testing.T) {
	generated := logging.GetOrGenerateTraceID(context.Background())
	_, err := ulid.Parse(generated)
	require.NoError(t, err)

	ctx := logging.ContextWithTraceID(context.Background(), generated)
	assert.Equal(t, generated, logging.GetOrGenerateTraceID(ctx))
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "findash.log")
		result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile, File: path})
		t.Cleanup(func() { _ = result.Close() })

		assert.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
		assert.False(t, result.FallbackUsed)
	})

	t.Run("file output without path falls back", func(t *testing.T) {
		result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile})
		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})

	t.Run("discard", func(t *testing.T) {
		result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputDiscard})
		assert.Equal(t, zerolog.Disabled, result.Logger.GetLevel())
		assert.NoError(t, result.Close())
	})
}
