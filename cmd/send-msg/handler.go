package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/jqs7/hwbot/pkg/model"
	"github.com/rs/zerolog"
)

// newHandler delivers every record of the batch and reports only the failed
// ones back, so delivered records are not sent twice on redelivery. The event
// source mapping must enable ReportBatchItemFailures.
func newHandler(botAPI bot.Interface, log zerolog.Logger) func(context.Context, events.SQSEvent) (events.SQSEventResponse, error) {
	return func(ctx context.Context, req events.SQSEvent) (events.SQSEventResponse, error) {
		resp := events.SQSEventResponse{}
		for _, v := range req.Records {
			msg := &model.Notification{}
			if err := json.Unmarshal([]byte(v.Body), msg); err != nil {
				log.Error().Err(err).Str("message_id", v.MessageId).Msg("drop undecodable notification")
				continue
			}
			if _, err := botAPI.SendMsg(msg.ChatID, msg.Text); err != nil {
				log.Error().Err(err).Str("chat_id", msg.ChatID).Str("message_id", v.MessageId).Msg("failed to send message")
				resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
					ItemIdentifier: v.MessageId,
				})
				continue
			}
			log.Debug().Str("chat_id", msg.ChatID).Msg("message sent")
		}
		return resp, nil
	}
}
