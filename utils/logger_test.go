package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info").With("request_id", "abc")

	logger.Debug("hidden")
	logger.Warn("unknown option", "option", "x")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "unknown option", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "x", entry["option"])
}

func TestLoggerFromContext(t *testing.T) {
	fallback := NewNopLogger()
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	scoped := fallback.With("request_id", "r1")
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, LoggerFrom(ctx, fallback))
}
