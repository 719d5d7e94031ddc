package task

import (
	"errors"
	"strings"
)

// Error categories. Every failure raised by the parser, the list, the store
// or the session satisfies errors.Is against exactly one of these.
var (
	ErrParse          = errors.New("parse error")
	ErrValidation     = errors.New("validation error")
	ErrIndex          = errors.New("index error")
	ErrUnknownCommand = errors.New("unknown command")
	ErrStorage        = errors.New("storage error")
	ErrNotFound       = errors.New("not found")
)

// Error is a user-facing failure tagged with its category.
// It satisfies errors.Is(err, Kind) as well as identity comparison, so a
// package-level *Error doubles as a sentinel.
type Error struct {
	Kind error
	Msg  string
}

// NewError returns an *Error of the given category.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string {
	if e == nil || strings.TrimSpace(e.Msg) == "" {
		if e != nil && e.Kind != nil {
			return e.Kind.Error()
		}
		return "error"
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	return e != nil && target == e.Kind
}

// ErrIndexOutOfRange is returned by List.Get and List.Delete.
var ErrIndexOutOfRange = NewError(ErrIndex, "this task number is not valid")
