package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"warn": slog.LevelWarn, "warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(slog.LevelInfo, "json", &buf)
	log.Debug("hidden")
	log.Info("shown", slog.Int("n", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "exactly one JSON record")
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, float64(3), rec["n"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logging.New(slog.LevelWarn, "text", &buf).Warn("careful", slog.String("k", "v"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "msg=careful")
	assert.Contains(t, buf.String(), "k=v")
}
