package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amirbrooks/dude/internal/store"
	"github.com/amirbrooks/dude/internal/task"
)

const horizontalLine = "____________________________________"

const logo = ` ____        _____
|  _ \ _   _|  _ \   ___
| | | | | | | | | |/  _ \
| |_| | |_| | |_| |\  __/
|____/ \__,_|____/  \___|`

// UI renders every user-facing message. Each response is framed by the
// separator rule. Styling comes from a renderer bound to the output, so a
// non-terminal writer receives plain text.
type UI struct {
	out  io.Writer
	rule string
	logo string
}

func NewUI(out io.Writer) *UI {
	r := lipgloss.NewRenderer(out)
	ruleStyle := r.NewStyle().Foreground(lipgloss.Color("8"))
	logoStyle := r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	// Styled line by line; a multi-line Render pads every line to the widest.
	lines := strings.Split(logo, "\n")
	for i, l := range lines {
		lines[i] = logoStyle.Render(l)
	}
	return &UI{
		out:  out,
		rule: ruleStyle.Render(horizontalLine),
		logo: strings.Join(lines, "\n"),
	}
}

func (u *UI) println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *UI) block(lines ...string) {
	u.println(u.rule)
	for _, l := range lines {
		u.println(l)
	}
	u.println(u.rule)
}

// ShowBootstrap reports what first-run setup created.
func (u *UI) ShowBootstrap(b store.Bootstrap, path string) {
	if b.CreatedDir {
		u.block("Dude I created a data directory")
	}
	if b.CreatedFile {
		u.println("File created at: " + path)
	} else {
		u.println("File already exists at: " + path)
	}
}

// ShowGreeting prints the logo and the raw saved records as a preview.
// readErr is the error from reading the preview, if any.
func (u *UI) ShowGreeting(saved []string, readErr error) {
	u.println(u.rule)
	u.println(u.logo)
	u.println("Hello! I'm Dude")
	u.println("This was your previous saved list of tasks:")
	switch {
	case errors.Is(readErr, task.ErrNotFound):
		u.println("File not found")
	case readErr != nil:
		u.println("Dude, " + readErr.Error())
	}
	for _, line := range saved {
		u.println(line)
	}
	u.println("What can I do for you?")
	u.println(u.rule)
}

func (u *UI) ShowTaskAdded(t *task.Task, size int) {
	u.block(
		"Dude I got it. I've added this task:",
		"  "+t.String(),
		fmt.Sprintf("Now you have %d tasks in the list.", size),
	)
}

func (u *UI) ShowTaskDeleted(t *task.Task, remaining int) {
	u.block(
		"Dude I've removed this task:",
		"  "+t.String(),
		fmt.Sprintf("Now you have %d tasks in the list.", remaining),
	)
}

func (u *UI) ShowMarked(t *task.Task, done bool) {
	msg := "Dude really? I've marked this task as not done yet:"
	if done {
		msg = "Dude OKAY. I've marked this task as done:"
	}
	u.block(msg, "  "+t.String())
}

func (u *UI) ShowList(tasks []*task.Task) {
	lines := append([]string{"Here are the tasks in your list:"}, numbered(tasks)...)
	u.block(lines...)
}

func (u *UI) ShowSearchResults(tasks []*task.Task) {
	if len(tasks) == 0 {
		u.block("Dude, I couldn't find any tasks matching that keyword.")
		return
	}
	lines := append([]string{"Dude, here are the matching tasks in your list:"}, numbered(tasks)...)
	u.block(lines...)
}

func (u *UI) ShowError(err error) {
	u.block("Dude, " + err.Error())
}

func (u *UI) ShowSaveFailed(err error) {
	u.block("Dude, I couldn't save the changes: " + err.Error())
}

func (u *UI) ShowNotice(msg string) {
	u.block(strings.TrimSpace(msg))
}

func (u *UI) ShowExit() {
	u.println("Dude that's it? Okay Bye. See you again soon I hope.")
	u.println(u.rule)
}

func numbered(tasks []*task.Task) []string {
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, fmt.Sprintf("%d.%s", i+1, t))
	}
	return out
}
