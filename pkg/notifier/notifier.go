// Package notifier delivers bot messages to the single configured chat.
package notifier

import "context"

//go:generate go run github.com/golang/mock/mockgen -source=notifier.go -package=notifier -destination=mock.go Interface
type Interface interface {
	Send(ctx context.Context, text string) error
}
