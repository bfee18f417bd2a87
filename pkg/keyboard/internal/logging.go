package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	output io.Writer = os.Stderr
)

// SetOutput redirects log output. Call it before the first Logger call;
// later calls have no effect.
func SetOutput(w io.Writer) {
	output = w
}

// Logger returns the shared structured logger. The default level is error
// so library internals stay quiet unless a caller opts in.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(slog.LevelError)
		logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// SetLevel adjusts the shared logger's level.
func SetLevel(level slog.Level) {
	Logger()
	levelVar.Set(level)
}

// SetRawLevel parses a textual level name, defaulting to info.
func SetRawLevel(raw string) {
	var level slog.Level
	switch strings.ToLower(raw) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	SetLevel(level)
}
