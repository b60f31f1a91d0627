package queue

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"golang.org/x/xerrors"
)

type SQS struct {
	sqs sqsiface.SQSAPI
}

func NewSQS(p client.ConfigProvider) Interface {
	return &SQS{
		sqs: sqs.New(p),
	}
}

// SendMsg JSON-encodes body and puts it on the queue at URL queue.
func (s SQS) SendMsg(ctx context.Context, queue string, body interface{}) error {
	bs, err := json.Marshal(body)
	if err != nil {
		return xerrors.Errorf("encode message: %w", err)
	}
	_, err = s.sqs.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		MessageBody: aws.String(string(bs)),
		QueueUrl:    &queue,
	})
	if err != nil {
		return xerrors.Errorf("send message to %s: %w", queue, err)
	}
	return nil
}
