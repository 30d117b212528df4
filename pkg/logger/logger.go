package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env    string    // development -> consola legible; production -> JSON
	Level  string    // trace, debug, info, warn, error
	Output io.Writer // por defecto os.Stdout
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en production JSON.
// También queda como logger global y como logger por defecto de zerolog.Ctx,
// así los casos de uso registran aunque el contexto no traiga uno propio.
func New(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()

	log.Logger = zl
	zerolog.DefaultContextLogger = &zl

	return &Logger{zl: zl}
}

// ParseLevel interpreta LOG_LEVEL; valores desconocidos → info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// WithRequestID devuelve un contexto con un sublogger que lleva request_id.
// Se recupera con zerolog.Ctx(ctx).
func (l *Logger) WithRequestID(ctx context.Context, requestID string) context.Context {
	sub := l.zl.With().Str("request_id", requestID).Logger()
	return sub.WithContext(ctx)
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
