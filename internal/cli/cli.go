package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirbrooks/dude/internal/store"
	"github.com/amirbrooks/dude/internal/task"
)

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitInternal = 10
)

type GlobalFlags struct {
	ConfigPath string
	DataFile   string
	Verbose    bool
}

func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root := NewRoot()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, "dude:", err)
		var ue *usageError
		if errors.As(err, &ue) {
			return ExitUsage
		}
		return ExitInternal
	}
	return ExitOK
}

func NewRoot() *cobra.Command {
	gf := &GlobalFlags{}
	root := &cobra.Command{
		Use:           "dude",
		Short:         "Dude, a chatty line-oriented task tracker",
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(gf, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	pf := root.PersistentFlags()
	pf.StringVar(&gf.ConfigPath, "config", store.DefaultConfigFile, "Config file (YAML)")
	pf.StringVar(&gf.DataFile, "data", "", "Task file (default from config, else data/dude.txt)")
	pf.BoolVar(&gf.Verbose, "verbose", false, "Debug logging on stderr")

	root.AddCommand(newExportCmd(gf))
	return root
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unexpected argument %q", args[0])
	}
	return nil
}

func newExportCmd(gf *GlobalFlags) *cobra.Command {
	format := store.FormatJSON
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the saved task list as JSON or YAML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(strings.TrimSpace(format)) {
			case store.FormatJSON, store.FormatYAML, "yml":
			default:
				return usageErrorf("--format must be json or yaml, got %q", format)
			}
			cfg, _, err := loadSettings(gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tasks, err := store.Open(cfg.DataFile).Load()
			if err != nil && !errors.Is(err, task.ErrNotFound) {
				return fmt.Errorf("export: %w", err)
			}
			return store.Export(cmd.OutOrStdout(), tasks, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", store.FormatJSON, "Output format (json|yaml)")
	return cmd
}

// loadSettings resolves config then flags. Flags win.
func loadSettings(gf *GlobalFlags, errOut io.Writer) (store.Config, *slog.Logger, error) {
	cfg, err := store.LoadConfig(gf.ConfigPath)
	if err != nil {
		return cfg, nil, usageErrorf("%v", err)
	}
	if strings.TrimSpace(gf.DataFile) != "" {
		cfg.DataFile = strings.TrimSpace(gf.DataFile)
	}
	level := cfg.Level()
	if gf.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

func runSession(gf *GlobalFlags, in io.Reader, out, errOut io.Writer) error {
	cfg, logger, err := loadSettings(gf, errOut)
	if err != nil {
		return err
	}
	st := store.Open(cfg.DataFile)
	ui := NewUI(out)

	if b, err := st.Init(); err != nil {
		logger.Warn("could not prepare data file", "path", st.Path, "error", err)
		ui.ShowError(err)
	} else {
		ui.ShowBootstrap(b, st.AbsPath())
	}

	tasks := loadTasks(st, ui, logger)
	preview, err := st.RawLines()
	if err != nil && !errors.Is(err, task.ErrNotFound) {
		logger.Warn("could not read saved list", "path", st.Path, "error", err)
	}
	ui.ShowGreeting(preview, err)

	logger.Debug("session start", "path", st.Path, "tasks", len(tasks))
	return NewSession(task.NewList(tasks...), st, ui, logger).Run(in)
}

// loadTasks never fails the session: a missing file starts empty and an
// unreadable one is moved aside first.
func loadTasks(st *store.Store, ui *UI, logger *slog.Logger) []*task.Task {
	tasks, err := st.Load()
	switch {
	case err == nil:
		return tasks
	case errors.Is(err, task.ErrNotFound):
		return nil
	case errors.Is(err, store.ErrMalformedRecord):
		dest, qerr := st.Quarantine()
		if qerr != nil {
			logger.Warn("could not move unreadable data file", "path", st.Path, "error", qerr)
			ui.ShowError(qerr)
			return nil
		}
		logger.Warn("unreadable data file moved aside", "from", st.Path, "to", dest, "error", err)
		ui.ShowNotice(fmt.Sprintf("Dude, I couldn't read your saved tasks (%v). I moved them to %s and started a fresh list.", err, dest))
		return nil
	default:
		logger.Warn("could not load tasks", "path", st.Path, "error", err)
		ui.ShowError(err)
		return nil
	}
}
