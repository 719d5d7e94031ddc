package cli

import (
	"fmt"

	"github.com/amirbrooks/dude/internal/task"
)

// Command failures. Each aborts only the current line.
var (
	ErrEmptyMessage     = task.NewError(task.ErrValidation, "your message cannot be empty.")
	ErrEmptyDescription = task.NewError(task.ErrValidation, "your task description cannot be empty.")
	ErrEmptyField       = task.NewError(task.ErrValidation, "a task field cannot be empty.")
	ErrMissingClause    = task.NewError(task.ErrValidation, "a required clause is missing.")
	ErrOrdering         = task.NewError(task.ErrValidation, "your /from must be before /to.")
	ErrInvalidIndex     = task.ErrIndexOutOfRange
	ErrUnknownCommand   = task.NewError(task.ErrUnknownCommand,
		"only the following commands are valid: list, mark, unmark, delete, todo, deadline, event, find or bye.")
)

// commandError gives a sentinel a message specific to the command that
// failed. errors.Is still matches the sentinel and its category.
type commandError struct {
	err *task.Error
	msg string
}

func failf(err *task.Error, format string, args ...any) error {
	return &commandError{err: err, msg: fmt.Sprintf(format, args...)}
}

func (e *commandError) Error() string { return e.msg }

func (e *commandError) Unwrap() error { return e.err }

// usageError marks a bad invocation of the program itself.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
