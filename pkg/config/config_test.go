package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

var knownVars = []string{
	"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
	"PRACTICUM_ENDPOINT", "RETRY_PERIOD", "REQUEST_TIMEOUT",
	"LOG_LEVEL", "NOTIFY_QUEUE",
}

// setEnv clears every variable the bot reads, then applies vars.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range knownVars {
		old, had := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		k := k
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, old)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
	}
}

func requireConfigError(t *testing.T, err error) *Error {
	t.Helper()
	require.Error(t, err)
	cfgErr := &Error{}
	require.True(t, xerrors.As(err, &cfgErr), "want *config.Error, got %T", err)
	return cfgErr
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "api",
			"TELEGRAM_TOKEN":   "123456:tg-token",
			"TELEGRAM_CHAT_ID": "42",
		})
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "api", cfg.PracticumToken)
		assert.Equal(t, "123456:tg-token", cfg.TelegramToken)
		assert.Equal(t, "42", cfg.TelegramChatID)
		assert.Equal(t, "https://practicum.yandex.ru/api/user_api/homework_statuses/", cfg.Endpoint)
		assert.Equal(t, 10*time.Minute, cfg.RetryPeriod)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Empty(t, cfg.NotifyQueue)
	})

	t.Run("overrides", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":    "api",
			"TELEGRAM_TOKEN":     "123456:tg-token",
			"TELEGRAM_CHAT_ID":   "-100500",
			"PRACTICUM_ENDPOINT": "http://localhost/hw",
			"RETRY_PERIOD":       "30s",
			"NOTIFY_QUEUE":       "https://sqs/q",
		})
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "-100500", cfg.TelegramChatID)
		assert.Equal(t, "http://localhost/hw", cfg.Endpoint)
		assert.Equal(t, 30*time.Second, cfg.RetryPeriod)
		assert.Equal(t, "https://sqs/q", cfg.NotifyQueue)
	})

	t.Run("missing variable", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN": "api",
			"TELEGRAM_TOKEN":  "123456:tg-token",
		})
		_, err := Load("")
		requireConfigError(t, err)
	})

	t.Run("empty variable", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "",
			"TELEGRAM_TOKEN":   "123456:tg-token",
			"TELEGRAM_CHAT_ID": "42",
		})
		_, err := Load("")
		requireConfigError(t, err)
	})

	t.Run("bad chat id", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "api",
			"TELEGRAM_TOKEN":   "123456:tg-token",
			"TELEGRAM_CHAT_ID": "not-a-number",
		})
		_, err := Load("")
		cfgErr := requireConfigError(t, err)
		assert.True(t, xerrors.Is(err, bot.ErrInvalidChatID))
		assert.Contains(t, cfgErr.Error(), "@channelusername")
	})

	t.Run("channel username as chat id", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "api",
			"TELEGRAM_TOKEN":   "123456:tg-token",
			"TELEGRAM_CHAT_ID": "@homework_feed",
		})
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "@homework_feed", cfg.TelegramChatID)
	})

	t.Run("malformed telegram token", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "api",
			"TELEGRAM_TOKEN":   "not-a-token",
			"TELEGRAM_CHAT_ID": "42",
		})
		_, err := Load("")
		requireConfigError(t, err)
		assert.True(t, xerrors.Is(err, bot.ErrInvalidToken))
	})

	t.Run("bad retry period", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "api",
			"TELEGRAM_TOKEN":   "123456:tg-token",
			"TELEGRAM_CHAT_ID": "42",
			"RETRY_PERIOD":     "0s",
		})
		_, err := Load("")
		requireConfigError(t, err)
	})

	t.Run("env file", func(t *testing.T) {
		setEnv(t, map[string]string{"TELEGRAM_CHAT_ID": "7"})
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PRACTICUM_TOKEN=file-api\nTELEGRAM_TOKEN=111:file-tg\nTELEGRAM_CHAT_ID=1\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-api", cfg.PracticumToken)
		assert.Equal(t, "111:file-tg", cfg.TelegramToken)
		// already set in the environment, the file does not override it
		assert.Equal(t, "7", cfg.TelegramChatID)
	})

	t.Run("env file absent", func(t *testing.T) {
		setEnv(t, map[string]string{
			"PRACTICUM_TOKEN":  "api",
			"TELEGRAM_TOKEN":   "123456:tg-token",
			"TELEGRAM_CHAT_ID": "42",
		})
		_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
		require.NoError(t, err)
	})
}
