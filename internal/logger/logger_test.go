package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/config"
)

func TestSetupWithWriter(t *testing.T) {
	orig := log.Logger
	defer func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}()

	var buf bytes.Buffer
	require.NoError(t, SetupWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf))

	l := WithComponent("ingest")
	l.Debug().Msg("hidden")
	l.Info().Str("file_name", "a.png").Msg("file ingested")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ingest", entry["component"])
	assert.Equal(t, "docsearch", entry["service"])
	assert.Equal(t, "a.png", entry["file_name"])
	assert.Equal(t, "info", entry["level"])
	assert.NotEmpty(t, entry["time"])
}

func TestSetupWithWriter_InvalidLevel(t *testing.T) {
	err := SetupWithWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := FromContext(ContextWithRequestID(context.Background(), "rid-1"), base)
	l.Info().Msg("with id")
	assert.Contains(t, buf.String(), `"request_id":"rid-1"`)

	buf.Reset()
	l = FromContext(context.Background(), base)
	l.Info().Msg("without id")
	assert.NotContains(t, buf.String(), "request_id")
}
