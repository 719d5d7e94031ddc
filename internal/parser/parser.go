// Package parser extracts the command word and raw field values from one
// input line. It never touches task state and leaves semantic checks (empty
// fields, missing clauses) to the caller.
//
// Clause markers are matched as plain substrings at their first occurrence,
// so "/fromage" is read as "/from" followed by "age".
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/amirbrooks/dude/internal/task"
)

// Clause markers.
const (
	ClauseBy   = "/by"
	ClauseFrom = "/from"
	ClauseTo   = "/to"
)

var (
	ErrMissingArgument = task.NewError(task.ErrParse, "I need a task number to work with.")
	ErrNotANumber      = task.NewError(task.ErrParse, "that's not a number.")
	ErrEmptyArgument   = task.NewError(task.ErrParse, "your find command cannot be empty.")
)

// Command is the action selected by the command word.
type Command int

const (
	CmdUnknown Command = iota
	CmdList
	CmdMark
	CmdUnmark
	CmdDelete
	CmdTodo
	CmdDeadline
	CmdEvent
	CmdFind
	CmdBye
)

var commandWords = map[string]Command{
	"list":     CmdList,
	"mark":     CmdMark,
	"unmark":   CmdUnmark,
	"delete":   CmdDelete,
	"todo":     CmdTodo,
	"deadline": CmdDeadline,
	"event":    CmdEvent,
	"find":     CmdFind,
	"bye":      CmdBye,
}

// Lookup maps a command word to its Command, ignoring case.
func Lookup(word string) Command {
	if c, ok := commandWords[strings.ToLower(word)]; ok {
		return c
	}
	return CmdUnknown
}

// Classify is Lookup(CommandWord(line)).
func Classify(line string) Command {
	return Lookup(CommandWord(line))
}

// CommandWord returns the first whitespace-delimited token with its case
// preserved.
func CommandWord(line string) string {
	word, _ := splitCommand(line)
	return word
}

// TaskIndex returns the task number typed after the command word, as typed
// (1-based). Range checking is the caller's job.
func TaskIndex(line string) (int, error) {
	_, rest := splitCommand(line)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return 0, ErrMissingArgument
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// Description returns the task description. For todo it is everything after
// the command word; for other kinds it stops at the first "/".
func Description(line string) string {
	word, rest := splitCommand(line)
	rest = strings.TrimSpace(rest)
	if Lookup(word) == CmdTodo {
		return rest
	}
	before, _, _ := strings.Cut(rest, "/")
	return strings.TrimSpace(before)
}

// DeadlineBy returns the text after the first "/by", or "" when absent.
func DeadlineBy(line string) string {
	_, after, ok := strings.Cut(line, ClauseBy)
	if !ok {
		return ""
	}
	return strings.TrimSpace(after)
}

// EventFrom returns the text between the first "/from" and the first "/to"
// that follows it.
func EventFrom(line string) string {
	_, after, ok := strings.Cut(line, ClauseFrom)
	if !ok {
		return ""
	}
	from, _, _ := strings.Cut(after, ClauseTo)
	return strings.TrimSpace(from)
}

// EventTo returns the text after the first "/to" anywhere in the line. When
// "/to" precedes "/from" the result still contains "/from"; callers use that
// to reject misordered clauses.
func EventTo(line string) string {
	_, after, ok := strings.Cut(line, ClauseTo)
	if !ok {
		return ""
	}
	return strings.TrimSpace(after)
}

// FindKeyword returns the search text after the command word.
func FindKeyword(line string) (string, error) {
	_, rest := splitCommand(line)
	keyword := strings.TrimSpace(rest)
	if keyword == "" {
		return "", ErrEmptyArgument
	}
	return keyword, nil
}

// HasClause reports whether marker occurs anywhere in line.
func HasClause(line, marker string) bool {
	return strings.Contains(line, marker)
}

func splitCommand(line string) (string, string) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
