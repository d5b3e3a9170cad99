package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	expectedValues := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, expected := range expectedValues {
		level, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	buf := bytes.Buffer{}
	log, err := New(&buf, "info", FormatJSON)
	require.NoError(t, err)
	log.Info("decoded", "path", "brain.nii")
	log.Debug("hidden")
	assert.Contains(t, buf.String(), `"path":"brain.nii"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Text(t *testing.T) {
	buf := bytes.Buffer{}
	log, err := New(&buf, "debug", FormatText)
	require.NoError(t, err)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")

	_, err = New(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
