package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchsprint/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger, err := logging.New("warn", buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("document corrupt, using defaults", slog.String("path", "/tmp/x"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "document corrupt")
	assert.Contains(t, out, "app=switchsprint")
}
