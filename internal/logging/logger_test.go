package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "info", Format: "JSON"}, &buf)

	log.Debug("hidden")
	log.Info("solve finished", "steps", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "solve finished", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.EqualValues(t, 3, rec["steps"])
	assert.NotContains(t, rec, "source")
}

func TestNew_TextWithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "warn", Format: "text", IncludeCaller: true}, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("skipping edge")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="skipping edge"`)
	assert.Contains(t, buf.String(), "source=")
}
