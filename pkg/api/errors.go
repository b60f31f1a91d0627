package api

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	ErrRequestFailed = xerrors.New("request failed")
	ErrBadStatus     = xerrors.New("bad http status")
)

// RequestError wraps a transport failure or an undecodable body.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("API unavailable: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

// StatusError is returned for any response outside 2xx. The body is dropped.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API unavailable, response code %d", e.Code)
}

func (e *StatusError) Is(target error) bool { return target == ErrBadStatus }
