// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type LogBuild struct {
	writer io.Writer
	level  zerolog.Level
	format string
}

func New() *LogBuild {
	return &LogBuild{
		writer: os.Stderr,
		level:  zerolog.InfoLevel,
		format: FormatConsole,
	}
}

func (b *LogBuild) ToWriter(w io.Writer) *LogBuild {
	b.writer = w
	return b
}

// WithLevel parses level names such as "debug" or "warn". Unknown names keep
// the current level.
func (b *LogBuild) WithLevel(level string) *LogBuild {
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && parsed != zerolog.NoLevel {
		b.level = parsed
	}
	return b
}

func (b *LogBuild) WithFormat(format string) *LogBuild {
	b.format = strings.ToLower(format)
	return b
}

// Make returns the configured logger.
func (b *LogBuild) Make() zerolog.Logger {
	w := b.writer
	if b.format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: b.writer, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(b.level).With().Timestamp().Logger()
}

// MakeGlobal builds the logger and installs it as the package-level logger of
// github.com/rs/zerolog/log.
func (b *LogBuild) MakeGlobal() zerolog.Logger {
	logger := b.Make()
	log.Logger = logger
	return logger
}

// Component derives a sub-logger tagged with a component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
