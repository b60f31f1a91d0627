// Package logger builds the zerolog logger shared by the bot commands.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// New returns a console logger writing to stdout.
func New(level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.ErrorFieldName = "err"

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat, NoColor: true}
	return zerolog.New(cw).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel falls back to debug for unknown or empty input.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "critical", "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.DebugLevel
	}
}

// Critical starts an event at fatal level. Unlike log.Fatal() it does not
// exit the process.
func Critical(log zerolog.Logger) *zerolog.Event {
	return log.WithLevel(zerolog.FatalLevel)
}
