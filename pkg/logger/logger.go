// Package logger configura el logging estructurado del servicio sobre zerolog.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New construye el logger raíz del servicio: consola legible en development,
// JSON por stdout en el resto de entornos. El logger global de zerolog queda
// apuntando al mismo destino para las librerías que lo usan directamente.
func New(env, level string) zerolog.Logger {
	var zl zerolog.Logger
	if env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		zl = zerolog.New(os.Stdout)
	}
	zl = zl.Level(parseLevel(level)).With().Timestamp().Logger()

	log.Logger = zl
	return zl
}

// parseLevel acepta los niveles que usa la app (LOG_LEVEL); vacío o
// desconocido cae a info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
