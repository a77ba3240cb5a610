package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savevault/lang/internal/config"
	"github.com/savevault/lang/pkg/i18n"
	"github.com/savevault/lang/pkg/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvLocale, config.EnvLogLevel, config.EnvLogFormat,
		config.EnvSentryDSN, config.EnvSentryEnvironment,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, i18n.English, cfg.Locale)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
	assert.False(t, cfg.Sentry.Enabled())
	assert.Equal(t, "production", cfg.Sentry.Environment)
	assert.NotNil(t, cfg.Logger())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLocale, "en")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvSentryEnvironment, "staging")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, i18n.English, cfg.Locale)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.Equal(t, "staging", cfg.Sentry.Environment)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "locale", key: config.EnvLocale, val: "fr-FR"},
		{name: "level", key: config.EnvLogLevel, val: "verbose"},
		{name: "format", key: config.EnvLogFormat, val: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(config.EnvLogLevel))
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvLogLevel) })

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte(config.EnvLogLevel+"=error\n"), 0o600))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
