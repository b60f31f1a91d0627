package notifier

import (
	"context"

	"github.com/jqs7/hwbot/pkg/model"
	"github.com/jqs7/hwbot/pkg/queue"
)

// Queue hands messages to the send-msg lambda through SQS.
type Queue struct {
	queue    queue.Interface
	queueURL string
	chatID   string
}

func NewQueue(q queue.Interface, queueURL string, chatID string) Interface {
	return &Queue{queue: q, queueURL: queueURL, chatID: chatID}
}

func (q Queue) Send(ctx context.Context, text string) error {
	return q.queue.SendMsg(ctx, q.queueURL, model.Notification{
		ChatID: q.chatID,
		Text:   text,
	})
}
