package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/jqs7/hwbot/pkg/logger"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	botAPI, err := bot.NewAPI(os.Getenv("TELEGRAM_TOKEN"))
	if err != nil {
		logger.Critical(log).Err(err).Msg("invalid telegram token")
		os.Exit(1)
	}

	lambda.Start(newHandler(botAPI, log))
}
