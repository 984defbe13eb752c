package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// Setup configures the process-wide diagnostic logger. Diagnostics stay off
// ("disabled") unless a level is chosen; they go to stderr so they never mix
// with the report output on stdout.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	parsed := parseLevel(level)
	if parsed == zerolog.Disabled {
		set(zerolog.Nop())
		return
	}

	w := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	set(zerolog.New(w).With().Timestamp().Logger().Level(parsed))
}

// Get returns the current diagnostic logger. Before Setup it is a no-op
// logger, so packages can log unconditionally.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithComponent returns the diagnostic logger tagged with a component name.
func WithComponent(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

func set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.Disabled
	}
}
