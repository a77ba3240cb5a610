// Package logger builds the slog loggers used across the module.
//
// Loggers write JSON or text records to any io.Writer:
//
//	log := logger.New(os.Stderr, slog.LevelWarn, logger.FormatText)
//
// NewNope returns a logger that discards everything and is the default for
// components that accept an optional logger.
//
// # Sentry Integration
//
// NewWithSentry additionally forwards records to Sentry:
//
//	cfg := logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}
//	log := logger.NewWithSentry(cfg, os.Stderr, slog.LevelWarn, logger.FormatJSON)
//	defer logger.Flush(2 * time.Second)
//
// Errors create Issues in Sentry; warnings are stored as logs. If the DSN is
// empty or Sentry fails to initialize, logging continues to the writer only.
package logger
