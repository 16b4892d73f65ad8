// Package logger arma el logger estructurado del proceso sobre zerolog.
// En development la salida es consola legible; en cualquier otro entorno
// es JSON por stdout, un evento por línea.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config entorno y nivel mínimo. Level acepta los nombres de zerolog
// (trace, debug, info, warn, error); vacío o desconocido cae en info.
type Config struct {
	Env   string
	Level string
}

// Logger envoltorio delgado sobre zerolog. Se inyecta en los cmds en vez de
// depender del logger global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del proceso y deja el logger global de zerolog
// apuntando al mismo destino, para las librerías que escriben vía log.Logger.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Named devuelve un sublogger con el campo component fijo.
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}
