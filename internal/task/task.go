package task

import (
	"fmt"
	"strings"
)

// Kind identifies the task variant. The set is closed.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// Code returns the single-letter code used in saved records and in the
// display prefix.
func (k Kind) Code() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindFromCode is the inverse of Code.
func KindFromCode(code string) (Kind, bool) {
	switch strings.TrimSpace(code) {
	case "T":
		return KindTodo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// Task is one tracked unit of work. The variant is chosen by the
// constructor and never changes afterwards; By is only meaningful for
// deadlines, From and To only for events.
type Task struct {
	kind        Kind
	Description string
	Done        bool
	By          string
	From        string
	To          string
}

func NewTodo(description string) *Task {
	return &Task{kind: KindTodo, Description: description}
}

func NewDeadline(description, by string) *Task {
	return &Task{kind: KindDeadline, Description: description, By: by}
}

func NewEvent(description, from, to string) *Task {
	return &Task{kind: KindEvent, Description: description, From: from, To: to}
}

func (t *Task) Kind() Kind { return t.kind }

// StatusIcon is "X" when done and a blank otherwise.
func (t *Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// Contains reports whether keyword occurs in the description (case-sensitive).
func (t *Task) Contains(keyword string) bool {
	return strings.Contains(t.Description, keyword)
}

func (t *Task) String() string {
	base := fmt.Sprintf("[%s][%s] %s", t.kind.Code(), t.StatusIcon(), t.Description)
	switch t.kind {
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", base, t.By)
	case KindEvent:
		return fmt.Sprintf("%s (from: %s to: %s)", base, t.From, t.To)
	default:
		return base
	}
}

// Equal compares every field including the variant.
func (t *Task) Equal(o *Task) bool {
	if t == nil || o == nil {
		return t == o
	}
	return *t == *o
}
