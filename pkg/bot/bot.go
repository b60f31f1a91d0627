//go:generate go run github.com/golang/mock/mockgen -source=bot.go -package=bot -destination=mock.go Interface
package bot

// Interface sends to a chat addressed either by numeric id or by
// @channelusername.
type Interface interface {
	SendMsg(chatID string, msg string) (int, error)
}
