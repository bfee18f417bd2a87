package keyboard

import (
	"io"
	"log/slog"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard/internal"
)

// Logger returns the structured logger shared by all keyboard packages.
func Logger() *slog.Logger {
	return internal.Logger()
}

// SetLogOutput redirects log output. Call it before anything has logged;
// later calls have no effect.
func SetLogOutput(w io.Writer) {
	internal.SetOutput(w)
}

// SetLogLevel adjusts the shared logger's level. The default is error.
func SetLogLevel(level slog.Level) {
	internal.SetLevel(level)
}

// SetRawLogLevel parses a textual level name such as "debug" or "warn".
func SetRawLogLevel(level string) {
	internal.SetRawLevel(level)
}
