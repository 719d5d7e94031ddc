package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runDude(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunSessionBootstrapsAndSaves(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data", "dude.txt")
	cfg := filepath.Join(root, "dude.yaml")

	code, out, errOut := runDude(t, "todo read book\nmark 1\nbye\n", "--config", cfg, "--data", data)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Dude I created a data directory") || !strings.Contains(out, "File created at:") {
		t.Fatalf("expected bootstrap messages:\n%s", out)
	}
	b, err := os.ReadFile(data)
	if err != nil {
		t.Fatalf("read data: %v", err)
	}
	if string(b) != "T | 1 | read book\n" {
		t.Fatalf("unexpected data file %q", string(b))
	}

	code, out, _ = runDude(t, "list\nbye\n", "--config", cfg, "--data", data)
	if code != ExitOK {
		t.Fatalf("second run exit %d", code)
	}
	if !strings.Contains(out, "File already exists at:") {
		t.Fatalf("expected existing file message:\n%s", out)
	}
	if !strings.Contains(out, "This was your previous saved list of tasks:\nT | 1 | read book") {
		t.Fatalf("expected saved preview in greeting:\n%s", out)
	}
	if !strings.Contains(out, "1.[T][X] read book") {
		t.Fatalf("expected reloaded task in listing:\n%s", out)
	}
}

func TestRunUsesConfigDataFile(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "elsewhere", "tasks.txt")
	cfg := filepath.Join(root, "dude.yaml")
	if err := os.WriteFile(cfg, []byte("data_file: "+data+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code, _, errOut := runDude(t, "todo x\nbye\n", "--config", cfg); code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if _, err := os.Stat(data); err != nil {
		t.Fatalf("expected data file from config: %v", err)
	}
}

func TestRunQuarantinesMalformedFile(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "dude.txt")
	if err := os.WriteFile(data, []byte("T | 0 | ok\nE | 0 | party | Fri\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runDude(t, "list\nbye\n", "--config", filepath.Join(root, "none.yaml"), "--data", data)
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "started a fresh list") {
		t.Fatalf("expected quarantine notice:\n%s", out)
	}
	if !strings.Contains(out, "This was your previous saved list of tasks:\nFile not found") {
		t.Fatalf("expected missing preview notice:\n%s", out)
	}
	if !strings.Contains(errOut, "unreadable data file moved aside") {
		t.Fatalf("expected warning log:\n%s", errOut)
	}
	matches, _ := filepath.Glob(filepath.Join(root, "dude.txt.corrupt-*"))
	if len(matches) != 1 {
		t.Fatalf("expected one quarantined file, got %v", matches)
	}
}

func TestExportCommand(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "dude.txt")
	if err := os.WriteFile(data, []byte("T | 1 | read book\nE | 0 | gig | Fri | Sat\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runDude(t, "", "export", "--data", data, "--config", filepath.Join(root, "none.yaml"))
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	var payload struct {
		Tasks []struct {
			Type string `json:"type"`
			Done bool   `json:"done"`
			From string `json:"from"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(payload.Tasks) != 2 || !payload.Tasks[0].Done || payload.Tasks[1].From != "Fri" {
		t.Fatalf("unexpected export %+v", payload.Tasks)
	}

	code, out, _ = runDude(t, "", "export", "--format", "yaml", "--data", data, "--config", filepath.Join(root, "none.yaml"))
	if code != ExitOK || !strings.Contains(out, "description: gig") {
		t.Fatalf("unexpected yaml export (exit %d):\n%s", code, out)
	}
}

func TestUsageErrors(t *testing.T) {
	root := t.TempDir()
	cases := [][]string{
		{"unexpected"},
		{"--no-such-flag"},
		{"export", "--format", "xml", "--config", filepath.Join(root, "none.yaml")},
	}
	for _, args := range cases {
		if code, _, _ := runDude(t, "", args...); code != ExitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, ExitUsage, code)
		}
	}
}

func TestBadConfigIsUsageError(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "dude.yaml")
	if err := os.WriteFile(cfg, []byte("data_file: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code, _, errOut := runDude(t, "bye\n", "--config", cfg); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d (%s)", code, errOut)
	}
}
