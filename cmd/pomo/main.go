package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinytelemetry/pomo/internal/duration"
	"github.com/tinytelemetry/pomo/internal/model"
	"github.com/tinytelemetry/pomo/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro countdown with large block digits",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			cfg, err := loadCLIConfig(configPath, cmd)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTimer(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/pomo/config.yml)")
	rootCmd.Flags().StringP("goal", "g", "", "name of the task you are working on")
	rootCmd.Flags().StringP("time", "t", "", "initial time, format [[HH:]MM:]SS (default "+defaultTime+")")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version information")

	rootCmd.AddCommand(newHistoryCmd(&configPath))
	return rootCmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "pomo - Pomodoro Timer\n")
	fmt.Fprintf(w, "  Version:    %s\n", version)
	fmt.Fprintf(w, "  Commit:     %s\n", commit)
	fmt.Fprintf(w, "  Built:      %s\n", buildTime)
	fmt.Fprintf(w, "  Go version: %s\n", goVersion)
}

func runTimer(ctx context.Context, cfg cliConfig, out io.Writer) error {
	seconds, err := duration.Parse(cfg.Time)
	if err != nil {
		return fmt.Errorf("invalid --time value: %w", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("TUI requires a real terminal")
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	m := tui.New(model.TimerConfig{Goal: cfg.Goal, InitialSeconds: seconds})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	session, runErr := tui.Run(ctx, m, opts...)

	saveHistory(cfg.HistoryFile, &session)
	if err := writeSummary(out, cfg.SummaryFormat, &session); err != nil {
		return err
	}

	if runErr != nil {
		return fmt.Errorf("error running TUI: %w", runErr)
	}
	return nil
}

// setupLogging keeps log output off the terminal while the TUI owns it.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "pomo")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
