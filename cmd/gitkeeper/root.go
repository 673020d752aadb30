package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/polysim/gitkeeper/internal/appstate"
	"github.com/polysim/gitkeeper/internal/clipboard"
	"github.com/polysim/gitkeeper/internal/config"
	"github.com/polysim/gitkeeper/internal/state"
	"github.com/polysim/gitkeeper/internal/theme"
	"github.com/polysim/gitkeeper/internal/tui"
	"github.com/polysim/gitkeeper/internal/vcs/gitcli"
)

var (
	repoPath  string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "gitkeeper",
	Short: "A terminal UI for operating a git repository",
	RunE:  runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoPath, "path", ".", "path to the repository")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.AddCommand(logCmd)
}

// setupLogging points the default slog logger at the log file under the
// config directory, opened for appending; the file is never rotated. Only
// when no home directory can be determined does it log to stderr instead.
func setupLogging(debug bool) (*os.File, error) {
	path := config.LogPath()
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logFile, err := setupLogging(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open log file: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if debugMode {
		cfg.Debug = true
	}

	ctx := context.Background()
	repo, err := gitcli.Open(ctx, repoPath)
	if err != nil {
		return err
	}

	theme.ApplyResolved(theme.ResolveTheme(cfg))

	if err := state.Init(); err != nil {
		slog.Warn("failed to load persisted UI state", "err", err)
	}

	st := appstate.New(repo, repo.RootDir())
	st.Clipboard = clipboard.System{}
	tui.RestoreView(st, state.GetRepoState(repo.RootDir()))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "gitkeeper requires an interactive terminal")
		os.Exit(1)
	}

	model := tui.New(ctx, st, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	if m, ok := final.(tui.Model); ok {
		m.SaveState()
	}
	return nil
}
