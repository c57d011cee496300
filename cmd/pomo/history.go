package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	xduration "maze.io/x/duration"

	"github.com/tinytelemetry/pomo/internal/duration"
	"github.com/tinytelemetry/pomo/internal/journal"
	"github.com/tinytelemetry/pomo/internal/model"
)

var clock clockwork.Clock = clockwork.NewRealClock()

func newHistoryCmd(configPath *string) *cobra.Command {
	var since string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(*configPath, cmd)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.HistoryFile == "" {
				return fmt.Errorf("history is disabled (history-file is empty)")
			}

			var cutoff time.Time
			if since != "" {
				d, err := xduration.ParseDuration(since)
				if err != nil {
					return fmt.Errorf("invalid --since %q: %w", since, err)
				}
				cutoff = clock.Now().Add(-time.Duration(d))
			}

			sessions, err := journal.Read(cfg.HistoryFile, cutoff)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[len(sessions)-limit:]
			}
			return printHistory(cmd.OutOrStdout(), sessions)
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "only sessions started within this long ago (e.g. 8h, 7d, 2w)")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many of the most recent sessions (0 = all)")
	return cmd
}

func printHistory(out io.Writer, sessions []model.Session) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(out, "No sessions recorded.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "started\tgoal\tplanned\tremaining\tresult\n")
	for _, s := range sessions {
		result := "stopped"
		if s.Completed {
			result = "done"
		}
		goal := s.Goal
		if goal == "" {
			goal = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Started.Local().Format("2006-01-02 15:04"),
			goal,
			duration.Format(s.PlannedSeconds),
			duration.Format(s.RemainingSeconds),
			result)
	}
	return w.Flush()
}
