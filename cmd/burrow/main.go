package main

import (
	"fmt"
	"os"
	"path/filepath"

	"burrow/internal/config"
	"burrow/internal/errors"
	"burrow/internal/log"
	"burrow/internal/tui"
	"burrow/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev"

// Entry point for the application
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var showHidden bool
	var debug bool

	cmd := &cobra.Command{
		Use:     "burrow [path]",
		Short:   "A terminal directory browser",
		Long: `Burrow renders a scrollable, colorized listing of a directory and lets
you walk the filesystem tree, mark and delete entries, and hand the
current selection to your editor, shell, or opener.

Configuration comes from the environment: EDITOR, SHELL, HOME,
BURROW_OPENER, and BURROW_IGNORE (colon-separated glob patterns).
On quit the browse location is written to the burrow_dir and burrow_sel
files in the temp directory for shell integration.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Setup(debug)

			if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.ErrNotATerminal
			}

			start := ""
			if len(args) > 0 {
				start = args[0]
			}
			path, err := resolvePath(start)
			if err != nil {
				return err
			}

			cfg := config.Load()
			cfg.ShowHidden = showHidden

			// Auto-refresh is best effort; browsing works without it
			watcher, err := watch.New()
			if err != nil {
				log.Warn("auto-refresh disabled: %v", err)
				watcher = nil
			} else {
				watcher.Start()
			}

			model, err := tui.New(cfg, path, watcher)
			if err != nil {
				return err
			}

			p := newProgram(model)
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrInterrupted) {
					// An interrupt is an orderly quit; the message
					// filter has already persisted the session
					return nil
				}
				return errors.NewTerminalError("terminal session failed", errors.TerminalSetupFailed, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHidden, "hidden", false, "show hidden files at startup")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose logging to the log file")

	return cmd
}

// newProgram assembles the bubbletea program around the model. The message
// filter persists the session when a quit or interrupt message reaches the
// loop: SIGINT and SIGTERM become exactly those messages, and bubbletea
// stops the loop on them without consulting Update.
func newProgram(model *tui.Model, opts ...tea.ProgramOption) *tea.Program {
	base := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithFilter(saveOnShutdown),
	}
	return tea.NewProgram(model, append(base, opts...)...)
}

func saveOnShutdown(m tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.QuitMsg, tea.InterruptMsg:
		if browser, ok := m.(*tui.Model); ok {
			browser.Shutdown()
		}
	}
	return msg
}

// resolvePath turns the optional path argument into an absolute, verified
// directory, defaulting to the current working directory.
func resolvePath(arg string) (string, error) {
	if arg == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "cannot determine working directory")
		}
		return wd, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve %s", arg)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.NewFileError("cannot resolve path", arg, errors.FileNotFound, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", errors.NewFileError("cannot access path", resolved, errors.FileAccessDenied, err)
	}
	if !info.IsDir() {
		return "", errors.NewFileError("not a directory", resolved, errors.NotADirectory, nil)
	}
	return resolved, nil
}
