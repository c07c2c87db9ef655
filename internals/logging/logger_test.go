package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "info", Format: "json", ServiceName: "mentoring", Environment: "test", Output: &buf})

	logger.Info().Str("k", "v").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "mentoring", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetupLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "warn", Output: &buf})

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetupUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "loud", Output: &buf})

	logger.Debug().Msg("debug")
	assert.Zero(t, buf.Len())
	logger.Info().Msg("info")
	assert.Contains(t, buf.String(), "info")
}

func TestWriterAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: "info", Output: &buf})

	n, err := Writer().Write([]byte("GET /health - 200\n"))
	require.NoError(t, err)
	assert.Equal(t, len("GET /health - 200\n"), n)
	assert.Contains(t, buf.String(), `"message":"GET /health - 200"`)
	assert.Contains(t, buf.String(), `"component":"http"`)

	buf.Reset()
	l := WithRequestID("req-1")
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}
