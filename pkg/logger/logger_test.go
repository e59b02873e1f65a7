package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restock-api/pkg/logger"
)

// Fuera de development la salida es JSON estructurado con timestamp.
func TestLogger_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf)

	log.Info().Str("evento", "arranque").Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "arranque", line["evento"])
	assert.Equal(t, "listo", line["message"])
	assert.Contains(t, line, "time")
}

// El nivel configurado filtra los eventos por debajo; warn y error pasan.
func TestLogger_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "warn"}, &buf)

	log.Debug().Msg("invisible")
	log.Info().Msg("invisible")
	log.Warn().Msg("advertencia")
	log.Error().Msg("falla")

	out := buf.String()
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "advertencia")
	assert.Contains(t, out, "falla")
}

// Un nivel desconocido cae a info.
func TestLogger_NivelDesconocido_UsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "verboso"}, &buf)

	log.Debug().Msg("invisible")
	log.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "invisible")
	assert.Contains(t, buf.String(), "visible")
}

// En development la salida es de consola legible, no JSON crudo.
func TestLogger_DevelopmentConsolaLegible(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Env: "development", Level: "info"}, &buf)

	log.Info().Msg("hola")

	assert.False(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"),
		"la salida de development no debe ser JSON crudo")
	assert.Contains(t, buf.String(), "hola")
}
