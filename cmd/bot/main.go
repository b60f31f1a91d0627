package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jqs7/hwbot/pkg/api"
	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/jqs7/hwbot/pkg/config"
	"github.com/jqs7/hwbot/pkg/logger"
	"github.com/jqs7/hwbot/pkg/notifier"
	"github.com/jqs7/hwbot/pkg/poller"
	"golang.org/x/xerrors"
)

func main() {
	var envFile string
	flag.StringVar(&envFile, "env", ".env", "path to .env file")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		logger.Critical(logger.New("")).Err(err).Msg("missing required environment variable")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	botAPI, err := bot.NewAPI(cfg.TelegramToken)
	if err != nil {
		logger.Critical(log).Err(err).Msg("invalid telegram token")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := poller.New(
		api.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, log),
		notifier.NewTelegram(botAPI, cfg.TelegramChatID),
		cfg.RetryPeriod,
		log,
	)
	err = p.Run(ctx)
	if xerrors.Is(err, context.Canceled) {
		log.Info().Msg("stopped")
		return
	}
	logger.Critical(log).Err(err).Msg("bot stopped")
	cancel()
	os.Exit(1)
}
