package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/jqs7/hwbot/pkg/api"
	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/jqs7/hwbot/pkg/config"
	"github.com/jqs7/hwbot/pkg/logger"
	"github.com/jqs7/hwbot/pkg/notifier"
	"github.com/jqs7/hwbot/pkg/poller"
	"github.com/jqs7/hwbot/pkg/queue"
)

// Runs one poll per scheduled event. Nothing is kept between invocations:
// the window is the event time minus the schedule period, so the rule must
// fire every RETRY_PERIOD.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		logger.Critical(logger.New("")).Err(err).Msg("missing required environment variable")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	var n notifier.Interface
	if cfg.NotifyQueue != "" {
		sess, err := session.NewSession()
		if err != nil {
			logger.Critical(log).Err(err).Msg("init aws session")
			os.Exit(1)
		}
		n = notifier.NewQueue(queue.NewSQS(sess), cfg.NotifyQueue, cfg.TelegramChatID)
	} else {
		botAPI, err := bot.NewAPI(cfg.TelegramToken)
		if err != nil {
			logger.Critical(log).Err(err).Msg("invalid telegram token")
			os.Exit(1)
		}
		n = notifier.NewTelegram(botAPI, cfg.TelegramChatID)
	}

	p := poller.New(
		api.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, log),
		n, cfg.RetryPeriod, log,
	)

	lambda.Start(func(ctx context.Context, event events.CloudWatchEvent) error {
		window := event.Time.Add(-cfg.RetryPeriod).Unix()
		_, err := p.Tick(ctx, window)
		return p.Handle(ctx, err)
	})
}
