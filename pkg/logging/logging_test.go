package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", true)

	logger.Info("payment saved", slog.String("payment_id", "p-1"))
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "payment saved", entry["msg"])
	assert.Equal(t, "p-1", entry["payment_id"])
}

func TestNew_DevelopmentUsesConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", false)

	logger.Debug("bills loaded", slog.Int("count", 2))

	assert.Contains(t, buf.String(), "bills loaded")
	assert.Contains(t, buf.String(), "count")
}
