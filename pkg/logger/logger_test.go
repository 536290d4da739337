package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventario/pkg/logger"
)

func TestNew_NivelPorDefectoEsInfo(t *testing.T) {
	l := logger.New("production", "")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel(), "sin LOG_LEVEL el nivel debe ser info")
}

func TestNew_RespetaNivelConfigurado(t *testing.T) {
	casos := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"INFO":  zerolog.InfoLevel, // case-insensitive
	}
	for nivel, esperado := range casos {
		l := logger.New("production", nivel)
		assert.Equal(t, esperado, l.GetLevel(), "nivel %q", nivel)
	}
}

func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	l := logger.New("development", "verbose")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNew_RedirigeLoggerGlobal(t *testing.T) {
	l := logger.New("production", "warn")
	assert.Equal(t, l.GetLevel(), log.Logger.GetLevel(),
		"el logger global debe quedar al mismo nivel que el del servicio")
}
