package api

import "context"

//go:generate go run github.com/golang/mock/mockgen -source=api.go -package=api -destination=mock.go Interface
type Interface interface {
	// Fetch returns the decoded body of the statuses endpoint for submissions
	// changed since fromDate. The value is not shape-checked.
	Fetch(ctx context.Context, fromDate int64) (interface{}, error)
}
