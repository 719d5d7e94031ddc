package store

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/amirbrooks/dude/internal/task"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var timeNow = func() time.Time { return time.Now().UTC() }

// DefaultDataFile is where tasks are kept when nothing overrides it.
var DefaultDataFile = filepath.Join("data", "dude.txt")

// Store owns the saved task file. The process is assumed to be its only
// reader and writer.
type Store struct {
	Path string
}

// Bootstrap reports what Init had to create.
type Bootstrap struct {
	CreatedDir  bool
	CreatedFile bool
}

// Open returns a store for path. Nothing is touched on disk until Init,
// Load or Save is called.
func Open(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultDataFile
	}
	return &Store{Path: expandHome(path)}
}

// AbsPath is Path resolved against the working directory when possible.
func (s *Store) AbsPath() string {
	abs, err := filepath.Abs(s.Path)
	if err != nil {
		return s.Path
	}
	return abs
}

// Init creates the parent directory and an empty data file when missing.
func (s *Store) Init() (Bootstrap, error) {
	var b Bootstrap
	dir := filepath.Dir(s.Path)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return b, storageErr("create data directory", err)
		}
		b.CreatedDir = true
	}
	f, err := os.OpenFile(s.Path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		b.CreatedFile = true
		if err := f.Close(); err != nil {
			return b, storageErr("create data file", err)
		}
	case errors.Is(err, fs.ErrExist):
	default:
		return b, storageErr("create data file", err)
	}
	return b, nil
}

// Save replaces the whole data file with tasks in list order.
func (s *Store) Save(tasks []*task.Task) error {
	var buf bytes.Buffer
	for _, line := range Serialize(tasks) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := atomicWriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return storageErr("save tasks", err)
	}
	return nil
}

// Load reads every saved task. A missing file yields task.ErrNotFound;
// a malformed record yields an error matching ErrMalformedRecord.
func (s *Store) Load() ([]*task.Task, error) {
	lines, err := s.RawLines()
	if err != nil {
		return nil, err
	}
	return Deserialize(lines)
}

// RawLines returns the data file's lines undecoded.
func (s *Store) RawLines() ([]string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", task.ErrNotFound, s.Path)
		}
		return nil, storageErr("read tasks", err)
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, storageErr("read tasks", err)
	}
	return lines, nil
}

// Quarantine moves the data file aside so that the next Save does not
// overwrite records that could not be read. It returns the new path.
func (s *Store) Quarantine() (string, error) {
	dest := fmt.Sprintf("%s.corrupt-%s", s.Path, newULID())
	if err := os.Rename(s.Path, dest); err != nil {
		return "", storageErr("quarantine data file", err)
	}
	return dest, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", task.ErrStorage, op, err)
}

func newULID() string {
	t := ulid.Timestamp(timeNow())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return strings.ToUpper(id.String())
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, ".tmp-"+newULID())
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
