// Package config loads runtime settings for the command-line tools.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/savevault/lang/pkg/i18n"
	"github.com/savevault/lang/pkg/logger"
)

// Environment variables read by Load.
const (
	EnvLocale            = "SAVEVAULT_LOCALE"
	EnvLogLevel          = "SAVEVAULT_LOG_LEVEL"
	EnvLogFormat         = "SAVEVAULT_LOG_FORMAT"
	EnvSentryDSN         = "SENTRY_DSN"
	EnvSentryEnvironment = "SENTRY_ENVIRONMENT"
)

const (
	defaultLogLevel          = "warn"
	defaultSentryEnvironment = "production"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Locale    i18n.Locale
	LogLevel  slog.Level
	LogFormat string
	Sentry    logger.SentryConfig
}

// Load reads the optional dotenv files (".env" when none are given), then
// the environment, and validates the result. Variables already present in the
// environment take precedence over dotenv files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		// .env is optional when variables come from the environment.
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("config: load env files: %w", err)
	}

	raw := rawConfig{
		locale:      getenv(EnvLocale, i18n.DefaultLocale.ID()),
		logLevel:    getenv(EnvLogLevel, defaultLogLevel),
		logFormat:   getenv(EnvLogFormat, logger.FormatText),
		dsn:         os.Getenv(EnvSentryDSN),
		environment: getenv(EnvSentryEnvironment, defaultSentryEnvironment),
	}

	return raw.validate()
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger() *slog.Logger {
	return logger.NewWithSentry(c.Sentry, os.Stderr, c.LogLevel, c.LogFormat)
}

type rawConfig struct {
	locale      string
	logLevel    string
	logFormat   string
	dsn         string
	environment string
}

func (r rawConfig) validate() (*Config, error) {
	locale, err := i18n.ParseLocale(r.locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLocale, err)
	}

	level, err := logger.ParseLevel(r.logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLogLevel, err)
	}

	format, err := logger.ParseFormat(r.logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLogFormat, err)
	}

	return &Config{
		Locale:    locale,
		LogLevel:  level,
		LogFormat: format,
		Sentry: logger.SentryConfig{
			DSN:         r.dsn,
			Environment: r.environment,
			MinLevel:    slog.LevelWarn,
		},
	}, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
