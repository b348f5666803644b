// Package logger provides a thin wrapper around zerolog.Logger used across
// the kanban-board application. The Logger type embeds zerolog.Logger so all
// standard zerolog methods (Debug, Info, Warn, Error, Fatal) are available
// directly on *Logger.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout with the given minimum
// level ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func New(level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(os.Stdout).Level(lvl).With().
		Str("service", "kanban-board-api").
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
