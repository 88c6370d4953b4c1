// Package logging builds the process slog.Logger. Console output goes
// through a zerolog console writer; an optional file handler receives the
// same records via a fan-out.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger at the given level and any files that must be closed
// when the process is done logging.
func New(level, file string) (*slog.Logger, []io.Closer, error) {
	lvl := ParseLevel(level)

	consoleLogger := zerolog.
		New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).
		With().
		Timestamp().
		Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: lvl, Logger: &consoleLogger}.NewZerologHandler(),
	}

	var closers []io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		fileLogger := zerolog.New(f).With().Timestamp().Logger()
		handlers = append(handlers, slogzerolog.Option{Level: lvl, Logger: &fileLogger}.NewZerologHandler())
	}

	return slog.New(slogmulti.Fanout(handlers...)), closers, nil
}
