package notifier

import (
	"context"

	"github.com/jqs7/hwbot/pkg/bot"
)

// Telegram sends straight to the chat through the Bot API.
type Telegram struct {
	bot    bot.Interface
	chatID string
}

func NewTelegram(b bot.Interface, chatID string) Interface {
	return &Telegram{bot: b, chatID: chatID}
}

func (t Telegram) Send(_ context.Context, text string) error {
	_, err := t.bot.SendMsg(t.chatID, text)
	return err
}
