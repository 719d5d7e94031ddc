package cli

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/amirbrooks/dude/internal/parser"
	"github.com/amirbrooks/dude/internal/task"
)

// Saver persists the full task list. *store.Store satisfies it.
type Saver interface {
	Save(tasks []*task.Task) error
}

type State int

const (
	StateRunning State = iota
	StateExited
)

func (s State) String() string {
	if s == StateExited {
		return "exited"
	}
	return "running"
}

// Session routes one input line at a time to the task list and the saver.
// Every mutation rewrites the whole list through the saver before the next
// line is read.
type Session struct {
	tasks  *task.List
	saver  Saver
	ui     *UI
	logger *slog.Logger
	state  State
}

func NewSession(tasks *task.List, saver Saver, ui *UI, logger *slog.Logger) *Session {
	if tasks == nil {
		tasks = task.NewList()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{tasks: tasks, saver: saver, ui: ui, logger: logger}
}

func (s *Session) Tasks() *task.List { return s.tasks }

func (s *Session) State() State { return s.state }

// Run reads lines from r until bye or end of input. Command failures are
// shown and the loop carries on. Lines have no length limit.
func (s *Session) Run(r io.Reader) error {
	br := bufio.NewReader(r)
	for s.state == StateRunning {
		line, err := br.ReadString('\n')
		if line != "" || err == nil {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if derr := s.Dispatch(line); derr != nil {
				s.logger.Debug("command rejected", "error", derr)
				s.ui.ShowError(derr)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Dispatch processes a single line. The returned error is a command
// failure; the list and the saved file are unchanged when it is non-nil.
func (s *Session) Dispatch(line string) error {
	if s.state == StateExited {
		return nil
	}
	if strings.TrimSpace(line) == "" {
		return ErrEmptyMessage
	}
	cmd := parser.Classify(line)
	s.logger.Debug("dispatch", "command", parser.CommandWord(line), "tasks", s.tasks.Len())

	switch cmd {
	case parser.CmdBye:
		s.state = StateExited
		s.ui.ShowExit()
		return nil
	case parser.CmdList:
		s.ui.ShowList(s.tasks.All())
		return nil
	case parser.CmdMark, parser.CmdUnmark:
		return s.setDone(line, cmd == parser.CmdMark)
	case parser.CmdDelete:
		return s.delete(line)
	case parser.CmdTodo, parser.CmdDeadline, parser.CmdEvent:
		t, err := buildTask(cmd, line)
		if err != nil {
			return err
		}
		s.tasks.Add(t)
		s.ui.ShowTaskAdded(t, s.tasks.Len())
		s.persist()
		return nil
	case parser.CmdFind:
		keyword, err := parser.FindKeyword(line)
		if err != nil {
			return err
		}
		s.ui.ShowSearchResults(s.tasks.FindAll(keyword))
		return nil
	default:
		return ErrUnknownCommand
	}
}

func (s *Session) setDone(line string, done bool) error {
	n, err := parser.TaskIndex(line)
	if err != nil {
		return err
	}
	t, err := s.tasks.Get(n - 1)
	if err != nil {
		return err
	}
	t.Done = done
	s.ui.ShowMarked(t, done)
	s.persist()
	return nil
}

func (s *Session) delete(line string) error {
	n, err := parser.TaskIndex(line)
	if err != nil {
		return err
	}
	removed, err := s.tasks.Delete(n - 1)
	if err != nil {
		return err
	}
	s.ui.ShowTaskDeleted(removed, s.tasks.Len())
	s.persist()
	return nil
}

// persist reports a failed write without undoing the in-memory change.
func (s *Session) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.tasks.All()); err != nil {
		s.logger.Warn("save failed; memory and disk may differ", "error", err, "tasks", s.tasks.Len())
		s.ui.ShowSaveFailed(err)
	}
}

func buildTask(cmd parser.Command, line string) (*task.Task, error) {
	switch cmd {
	case parser.CmdTodo:
		desc := parser.Description(line)
		if desc == "" {
			return nil, failf(ErrEmptyDescription, "your todo task cannot be empty.")
		}
		return task.NewTodo(desc), nil
	case parser.CmdDeadline:
		if !parser.HasClause(line, parser.ClauseBy) {
			return nil, failf(ErrMissingClause, "a deadline task must have a %s.", parser.ClauseBy)
		}
		desc := parser.Description(line)
		if desc == "" {
			return nil, failf(ErrEmptyDescription, "your deadline task cannot be empty.")
		}
		by := parser.DeadlineBy(line)
		if by == "" {
			return nil, failf(ErrEmptyField, "your deadline %s cannot be empty.", parser.ClauseBy)
		}
		return task.NewDeadline(desc, by), nil
	case parser.CmdEvent:
		if !parser.HasClause(line, parser.ClauseFrom) || !parser.HasClause(line, parser.ClauseTo) {
			return nil, failf(ErrMissingClause, "an event task must have a %s and a %s.", parser.ClauseFrom, parser.ClauseTo)
		}
		desc := parser.Description(line)
		if desc == "" {
			return nil, failf(ErrEmptyDescription, "your event task cannot be empty.")
		}
		from, to := parser.EventFrom(line), parser.EventTo(line)
		if from == "" || to == "" {
			return nil, failf(ErrEmptyField, "your event %s or %s cannot be empty.", parser.ClauseFrom, parser.ClauseTo)
		}
		if strings.Contains(to, parser.ClauseFrom) {
			return nil, ErrOrdering
		}
		return task.NewEvent(desc, from, to), nil
	default:
		return nil, ErrUnknownCommand
	}
}
