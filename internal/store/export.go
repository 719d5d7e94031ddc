package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amirbrooks/dude/internal/task"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportRecord is the structured form of a task used by Export.
type ExportRecord struct {
	Index       int    `json:"index" yaml:"index"`
	Type        string `json:"type" yaml:"type"`
	Done        bool   `json:"done" yaml:"done"`
	Description string `json:"description" yaml:"description"`
	By          string `json:"by,omitempty" yaml:"by,omitempty"`
	From        string `json:"from,omitempty" yaml:"from,omitempty"`
	To          string `json:"to,omitempty" yaml:"to,omitempty"`
}

func exportRecords(tasks []*task.Task) []ExportRecord {
	out := make([]ExportRecord, 0, len(tasks))
	for i, t := range tasks {
		rec := ExportRecord{
			Index:       i + 1,
			Type:        t.Kind().String(),
			Done:        t.Done,
			Description: t.Description,
		}
		switch t.Kind() {
		case task.KindDeadline:
			rec.By = t.By
		case task.KindEvent:
			rec.From = t.From
			rec.To = t.To
		}
		out = append(out, rec)
	}
	return out
}

// Export writes tasks to w as JSON or YAML under a top-level "tasks" key.
func Export(w io.Writer, tasks []*task.Task, format string) error {
	payload := map[string]any{"tasks": exportRecords(tasks)}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (use json|yaml)", format)
	}
}
