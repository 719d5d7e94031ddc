package store

import (
	"fmt"
	"strings"

	"github.com/amirbrooks/dude/internal/task"
)

// FieldSeparator joins record fields on write. Reads split on the bare "|"
// and trim each field.
const FieldSeparator = " | "

const maxRecordFields = 5

var ErrMalformedRecord = task.NewError(task.ErrParse, "malformed record")

// RecordError reports which saved line could not be decoded.
// It satisfies errors.Is(err, ErrMalformedRecord).
type RecordError struct {
	Line   int
	Record string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRecord.Msg, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

// FormatRecord renders one task as a saved line. Fields are written
// verbatim, so a "|" inside any of them will not survive a reload.
func FormatRecord(t *task.Task) string {
	status := "0"
	if t.Done {
		status = "1"
	}
	fields := []string{t.Kind().Code(), status, t.Description}
	switch t.Kind() {
	case task.KindDeadline:
		fields = append(fields, t.By)
	case task.KindEvent:
		fields = append(fields, t.From, t.To)
	}
	return strings.Join(fields, FieldSeparator)
}

// Serialize renders tasks in list order, one record per task.
func Serialize(tasks []*task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FormatRecord(t))
	}
	return out
}

// ParseRecord decodes one saved line. ok is false for lines that are
// skipped: blank, fewer than three fields, or an unknown type code.
func ParseRecord(line string) (t *task.Task, ok bool, err error) {
	if strings.TrimSpace(line) == "" {
		return nil, false, nil
	}
	parts := strings.SplitN(line, "|", maxRecordFields)
	if len(parts) < 3 {
		return nil, false, nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	kind, known := task.KindFromCode(parts[0])
	if !known {
		return nil, false, nil
	}
	desc := parts[2]
	switch kind {
	case task.KindTodo:
		t = task.NewTodo(desc)
	case task.KindDeadline:
		if len(parts) < 4 {
			return nil, false, &RecordError{Record: line, Reason: "deadline without /by field"}
		}
		t = task.NewDeadline(desc, parts[3])
	case task.KindEvent:
		if len(parts) < 5 {
			return nil, false, &RecordError{Record: line, Reason: "event without /from and /to fields"}
		}
		t = task.NewEvent(desc, parts[3], parts[4])
	}
	t.Done = parts[1] == "1"
	return t, true, nil
}

// Deserialize decodes saved lines in order. The first malformed record
// aborts decoding with a *RecordError.
func Deserialize(lines []string) ([]*task.Task, error) {
	out := make([]*task.Task, 0, len(lines))
	for i, line := range lines {
		t, ok, err := ParseRecord(strings.TrimRight(line, "\r"))
		if err != nil {
			if re, isRecord := err.(*RecordError); isRecord {
				re.Line = i + 1
			}
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
