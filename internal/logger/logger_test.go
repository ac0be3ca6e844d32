package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "DEBUG", Writer: &buf})
	require.NoError(t, err)

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestHumanReadableOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{HumanReadable: true, Writer: &buf})
	require.NoError(t, err)

	log.Info().Str("caption", "editor").Msg("decorated")

	out := buf.String()
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"),
		"console writer emits text, not JSON")
	assert.Contains(t, out, "decorated")
}
