package bot

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"golang.org/x/xerrors"
)

var (
	ErrInvalidToken  = xerrors.New("invalid telegram token")
	ErrInvalidChatID = xerrors.New("chat id must be a number or @channelusername")
)

var tokenPattern = regexp.MustCompile(`^[0-9]+:[A-Za-z0-9_-]+$`)

type TGBotAPI struct {
	bot *tgbotapi.BotAPI
}

// NewAPI only checks the token format. Unlike tgbotapi.NewBotAPI it does not
// call getMe, so an unreachable Bot API at startup is not mistaken for a bad
// token; delivery errors show up on SendMsg instead.
func NewAPI(botToken string) (Interface, error) {
	if !ValidToken(botToken) {
		return nil, xerrors.Errorf("init telegram bot: %w", ErrInvalidToken)
	}
	return &TGBotAPI{
		bot: &tgbotapi.BotAPI{
			Token:  botToken,
			Client: &http.Client{Timeout: 30 * time.Second},
			Buffer: 100,
		},
	}, nil
}

// ValidToken reports whether token looks like "<bot id>:<secret>".
func ValidToken(token string) bool {
	return tokenPattern.MatchString(token)
}

// ValidChatID reports whether chatID can address a chat.
func ValidChatID(chatID string) bool {
	_, err := NewMessage(chatID, "")
	return err == nil
}

// NewMessage builds a plain-text message; homework names are not escaped
// for HTML.
func NewMessage(chatID, text string) (tgbotapi.MessageConfig, error) {
	chatID = strings.TrimSpace(chatID)
	var m tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil && id != 0 {
		m = tgbotapi.NewMessage(id, text)
	} else if len(chatID) > 1 && strings.HasPrefix(chatID, "@") && !strings.ContainsAny(chatID, " \t") {
		m = tgbotapi.NewMessageToChannel(chatID, text)
	} else {
		return m, xerrors.Errorf("%q: %w", chatID, ErrInvalidChatID)
	}
	m.DisableWebPagePreview = true
	return m, nil
}

func (b TGBotAPI) SendMsg(chatID string, msg string) (int, error) {
	m, err := NewMessage(chatID, msg)
	if err != nil {
		return -1, err
	}
	msgRst, err := b.bot.Send(m)
	if err != nil {
		return -1, xerrors.Errorf("send message to %s: %w", chatID, err)
	}
	return msgRst.MessageID, nil
}
