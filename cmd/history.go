package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List assessment sessions recorded in the event log",
	Long: `List assessment sessions recorded in the event log.

The default event log lives in memory and is empty for a new process.
Point TRIAGE_DB (or --db) at a file to inspect earlier runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd, true)
		if err != nil {
			return err
		}
		defer env.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")
		repo := env.store.EventRepo()

		if sessionID != "" {
			events, err := repo.ListAssessmentEvents(cmd.Context(), store.QueryOpts{SessionID: sessionID, Limit: limit})
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}
			printEvents(cmd.OutOrStdout(), events)
			return nil
		}

		sessions, err := repo.QuerySessionSummaries(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		printSessions(cmd.OutOrStdout(), sessions)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of rows (0 = unlimited)")
	historyCmd.Flags().String("session", "", "Show the events of one session")
}

func printSessions(w io.Writer, sessions []store.SessionSummaryRecord) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No assessments recorded.")
		return
	}
	fmt.Fprintf(w, "%-36s  %-16s  %-13s  %4s  %-9s  %s\n",
		"Session", "Started", "Domain", "Pct", "Status", "Complaint")
	for _, s := range sessions {
		status := "open"
		if s.Submitted {
			status = "submitted"
		}
		fmt.Fprintf(w, "%-36s  %-16s  %-13s  %3d%%  %-9s  %s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04"),
			catalog.DomainDisplayName(catalog.Domain(s.Domain)), s.Progress, status, s.ChiefComplaint)
	}
}

func printEvents(w io.Writer, events []store.AssessmentEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events for this session.")
		return
	}
	for _, e := range events {
		detail := ""
		switch e.Action {
		case store.ActionStart:
			detail = fmt.Sprintf("%q → %s", e.ChiefComplaint, e.Domain)
		case store.ActionAnswer:
			detail = fmt.Sprintf("%s = %s", e.QuestionID, e.OptionKey)
		}
		fmt.Fprintf(w, "%5d  %s  %-6s  %3d%%  %s\n",
			e.Sequence, e.Timestamp.Local().Format("15:04:05"), e.Action, e.Progress, detail)
	}
}
