package parser

import (
	"errors"
	"testing"

	"github.com/amirbrooks/dude/internal/task"
)

func TestClassifyIgnoresCase(t *testing.T) {
	cases := map[string]Command{
		"list":                  CmdList,
		"LIST":                  CmdList,
		"  Mark 2":              CmdMark,
		"unmark 1":              CmdUnmark,
		"delete 3":              CmdDelete,
		"todo read":             CmdTodo,
		"Deadline x /by y":      CmdDeadline,
		"event x /from a /to b": CmdEvent,
		"find book":             CmdFind,
		"BYE":                   CmdBye,
		"blah":                  CmdUnknown,
		"":                      CmdUnknown,
		"listing":               CmdUnknown,
	}
	for line, want := range cases {
		if got := Classify(line); got != want {
			t.Fatalf("Classify(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestCommandWordPreservesCase(t *testing.T) {
	if got := CommandWord("DeAdLiNe x /by y"); got != "DeAdLiNe" {
		t.Fatalf("unexpected command word %q", got)
	}
	if got := CommandWord("todo\tread"); got != "todo" {
		t.Fatalf("expected tab to delimit the command word, got %q", got)
	}
}

func TestTaskIndex(t *testing.T) {
	cases := []struct {
		line    string
		want    int
		wantErr error
	}{
		{"mark 1", 1, nil},
		{"unmark   12  ", 12, nil},
		{"delete -1", -1, nil},
		{"mark 0", 0, nil},
		{"mark", 0, ErrMissingArgument},
		{"mark    ", 0, ErrMissingArgument},
		{"mark one", 0, ErrNotANumber},
		{"mark 1 2", 0, ErrNotANumber},
		{"mark 1.5", 0, ErrNotANumber},
	}
	for _, c := range cases {
		got, err := TaskIndex(c.line)
		if c.wantErr != nil {
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("TaskIndex(%q): expected %v, got %v", c.line, c.wantErr, err)
			}
			if !errors.Is(err, task.ErrParse) {
				t.Fatalf("TaskIndex(%q): expected parse category", c.line)
			}
			continue
		}
		if err != nil {
			t.Fatalf("TaskIndex(%q): %v", c.line, err)
		}
		if got != c.want {
			t.Fatalf("TaskIndex(%q) = %d, want %d", c.line, got, c.want)
		}
	}
}

func TestDescription(t *testing.T) {
	cases := map[string]string{
		"todo read book":                    "read book",
		"todo   read /book  ":               "read /book",
		"TODO a/b":                          "a/b",
		"deadline return book /by Sunday":   "return book",
		"event meeting /from Mon /to Tue":   "meeting",
		"deadline /by Sunday":               "",
		"deadline submit report":            "submit report",
		"event a/b party /from Mon /to Tue": "a",
	}
	for line, want := range cases {
		if got := Description(line); got != want {
			t.Fatalf("Description(%q) = %q, want %q", line, got, want)
		}
	}
}

func TestDeadlineBy(t *testing.T) {
	if got := DeadlineBy("deadline return book /by Sunday 4pm "); got != "Sunday 4pm" {
		t.Fatalf("unexpected by %q", got)
	}
	if got := DeadlineBy("deadline x /by"); got != "" {
		t.Fatalf("expected empty by, got %q", got)
	}
	if got := DeadlineBy("deadline x"); got != "" {
		t.Fatalf("expected empty by when absent, got %q", got)
	}
}

func TestEventClauses(t *testing.T) {
	cases := []struct {
		line, from, to string
	}{
		{"event meeting /from Mon /to Tue", "Mon", "Tue"},
		{"event party /from Fri 8pm /to Mon 2am", "Fri 8pm", "Mon 2am"},
		{"event x /from Mon", "Mon", ""},
		{"event x /to Tue /from Mon", "Mon", "Tue /from Mon"},
		{"event cheese /fromage Mon /to Tue", "age Mon", "Tue"},
	}
	for _, c := range cases {
		if got := EventFrom(c.line); got != c.from {
			t.Fatalf("EventFrom(%q) = %q, want %q", c.line, got, c.from)
		}
		if got := EventTo(c.line); got != c.to {
			t.Fatalf("EventTo(%q) = %q, want %q", c.line, got, c.to)
		}
	}
}

func TestFindKeyword(t *testing.T) {
	got, err := FindKeyword("find  book club ")
	if err != nil {
		t.Fatalf("FindKeyword: %v", err)
	}
	if got != "book club" {
		t.Fatalf("unexpected keyword %q", got)
	}
	if _, err := FindKeyword("find   "); !errors.Is(err, ErrEmptyArgument) {
		t.Fatalf("expected empty argument error, got %v", err)
	}
}
