// Package config loads bot settings from the environment and an optional
// .env file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
)

type Config struct {
	PracticumToken string        `env:"PRACTICUM_TOKEN" env-required:"true"`
	TelegramToken  string        `env:"TELEGRAM_TOKEN" env-required:"true"`
	TelegramChatID string        `env:"TELEGRAM_CHAT_ID" env-required:"true"`
	Endpoint       string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RetryPeriod    time.Duration `env:"RETRY_PERIOD" env-default:"10m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"debug"`
	NotifyQueue    string        `env:"NOTIFY_QUEUE"`
}

// Error reports a missing or unusable setting. It is always fatal.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "config: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Load reads envFile (if it exists) into the process environment and then
// decodes the environment. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, &Error{Err: xerrors.Errorf("read %s: %w", envFile, err)}
		}
	}
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, &Error{Err: xerrors.Errorf("read env: %w", err)}
	}
	if err := cfg.validate(); err != nil {
		return nil, &Error{Err: err}
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if strings.TrimSpace(c.PracticumToken) == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if strings.TrimSpace(c.TelegramToken) == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if strings.TrimSpace(c.TelegramChatID) == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return xerrors.Errorf("missing required variables: %s", strings.Join(missing, ", "))
	}
	if !bot.ValidToken(c.TelegramToken) {
		return xerrors.Errorf("TELEGRAM_TOKEN: %w", bot.ErrInvalidToken)
	}
	if !bot.ValidChatID(c.TelegramChatID) {
		return xerrors.Errorf("TELEGRAM_CHAT_ID %q: %w", c.TelegramChatID, bot.ErrInvalidChatID)
	}
	if c.Endpoint == "" {
		return xerrors.New("PRACTICUM_ENDPOINT is empty")
	}
	if c.RetryPeriod <= 0 {
		return xerrors.New("RETRY_PERIOD must be > 0")
	}
	if c.RequestTimeout < 0 {
		return xerrors.New("REQUEST_TIMEOUT must be >= 0")
	}
	return nil
}
