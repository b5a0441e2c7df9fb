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
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{JSON: true, Level: slog.LevelWarn, Writer: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "household_id", "h1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "h1", line["household_id"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: slog.LevelInfo, Writer: &buf}).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}
