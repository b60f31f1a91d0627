package homework

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	ErrSchema = xerrors.New("unexpected API response shape")
	ErrRecord = xerrors.New("malformed homework record")
)

type SchemaKind int

const (
	NotAMapping SchemaKind = iota + 1
	MissingKeys
	WrongHomeworksType
)

func (k SchemaKind) String() string {
	switch k {
	case NotAMapping:
		return "response is not an object"
	case MissingKeys:
		return "response lacks homeworks or current_date"
	case WrongHomeworksType:
		return "homeworks is not a list"
	default:
		return fmt.Sprintf("SchemaKind(%d)", int(k))
	}
}

// SchemaError means the API contract changed; retrying will not help.
type SchemaError struct {
	Kind SchemaKind
	// Got is the Go type of the offending value.
	Got string
}

func (e *SchemaError) Error() string {
	if e.Got == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s, got %s", e.Kind, e.Got)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

type RecordError struct {
	Reason string
}

func (e *RecordError) Error() string {
	return "malformed homework record: " + e.Reason
}

func (e *RecordError) Is(target error) bool { return target == ErrRecord }
