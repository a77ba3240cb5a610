package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level
}

// Enabled reports whether a DSN is configured.
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

// NewWithSentry creates a logger that writes to w and forwards records to Sentry.
// If DSN is empty, only w receives records (graceful fallback for local use).
//
// Missing translations are logged at WARN, so a MinLevel of slog.LevelWarn
// surfaces them in Sentry as searchable logs without creating issues.
func NewWithSentry(cfg SentryConfig, w io.Writer, level slog.Level, format string) *slog.Logger {
	base := newHandler(w, level, format)

	if !cfg.Enabled() {
		return slog.New(base)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: keep logging locally if Sentry init fails
		slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(base)
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,   // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(base, sentryHandler))
}

// Flush waits up to timeout for buffered Sentry events to be delivered.
// It is a no-op when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
