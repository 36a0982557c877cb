package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
}

func TestNew_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "sevak.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("form", "login").Msg("visible")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"visible"`)
	assert.Contains(t, string(data), `"form":"login"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(zerolog.WarnLevel, &buf)

	l.Info().Msg("skip")
	l.Warn().Msg("keep")

	assert.NotContains(t, buf.String(), "skip")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestComponent(t *testing.T) {
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })

	var buf bytes.Buffer
	log.Logger = NewWithWriter(zerolog.DebugLevel, &buf)

	logger := Component("scale")
	logger.Debug().Msg("scaled sizes")

	assert.Contains(t, buf.String(), `"component":"scale"`)
	assert.Contains(t, buf.String(), `"message":"scaled sizes"`)
}
