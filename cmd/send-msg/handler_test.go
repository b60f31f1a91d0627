package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/golang/mock/gomock"
	"github.com/jqs7/hwbot/pkg/bot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, body string) events.SQSMessage {
	return events.SQSMessage{MessageId: id, Body: body}
}

func TestHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("whole batch delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBot := bot.NewMockInterface(ctrl)
		mockBot.EXPECT().SendMsg("42", "first").Return(1, nil).Times(1)
		mockBot.EXPECT().SendMsg("@homework_feed", "second").Return(2, nil).Times(1)

		resp, err := newHandler(mockBot, zerolog.Nop())(ctx, events.SQSEvent{Records: []events.SQSMessage{
			record("m1", `{"ChatID":"42","Text":"first"}`),
			record("m2", `{"ChatID":"@homework_feed","Text":"second"}`),
		}})
		require.NoError(t, err)
		assert.Empty(t, resp.BatchItemFailures)
	})

	t.Run("only failed records are redelivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBot := bot.NewMockInterface(ctrl)
		gomock.InOrder(
			mockBot.EXPECT().SendMsg("42", "first").Return(1, nil),
			mockBot.EXPECT().SendMsg("42", "second").Return(-1, errors.New("too many requests")),
			mockBot.EXPECT().SendMsg("42", "third").Return(3, nil),
		)

		resp, err := newHandler(mockBot, zerolog.Nop())(ctx, events.SQSEvent{Records: []events.SQSMessage{
			record("m1", `{"ChatID":"42","Text":"first"}`),
			record("m2", `{"ChatID":"42","Text":"second"}`),
			record("m3", `{"ChatID":"42","Text":"third"}`),
		}})
		require.NoError(t, err)
		assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m2"}}, resp.BatchItemFailures)
	})

	t.Run("undecodable record is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBot := bot.NewMockInterface(ctrl)
		mockBot.EXPECT().SendMsg("42", "ok").Return(1, nil).Times(1)

		resp, err := newHandler(mockBot, zerolog.Nop())(ctx, events.SQSEvent{Records: []events.SQSMessage{
			record("m1", `not json`),
			record("m2", `{"ChatID":"42","Text":"ok"}`),
		}})
		require.NoError(t, err)
		assert.Empty(t, resp.BatchItemFailures)
	})
}
