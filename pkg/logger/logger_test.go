package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConCampoService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Service: "stock-ledger-api", Writer: &buf})

	log.Info().Str("op", "startup").Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "stock-ledger-api", line["service"])
	assert.Equal(t, "startup", line["op"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "time")
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", Writer: &buf})

	log.Info().Msg("no debería salir")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}

func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "verboso", Writer: &buf})

	log.Debug().Msg("filtrado")
	assert.Zero(t, buf.Len())

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
