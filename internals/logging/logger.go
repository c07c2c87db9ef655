// Package logging wraps zerolog so the whole service writes one structured stream:
// application logs, the Fiber access log and GORM's query log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the process logger is built.
type Config struct {
	Level       string // trace, debug, info, warn, error
	Format      string // json | console
	ServiceName string
	Environment string
	Output      io.Writer
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Setup builds the process logger and makes it available through L().
func Setup(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}
	if cfg.Environment != "" {
		ctx = ctx.Str("env", cfg.Environment)
	}
	logger := ctx.Logger()

	mu.Lock()
	base = logger
	mu.Unlock()
	return logger
}

// L returns the process logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

// WithRequestID returns a child logger tagged with the request id.
func WithRequestID(id string) zerolog.Logger {
	return L().With().Str("request_id", id).Logger()
}

// Writer exposes the logger as an io.Writer for libraries that only accept one
// (the Fiber access log). Every write becomes one info-level entry.
func Writer() io.Writer {
	return accessWriter{}
}

type accessWriter struct{}

func (accessWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	L().Info().Str("component", "http").Msg(msg)
	return len(p), nil
}
