package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/assessment"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/selector"
)

var checkCmd = &cobra.Command{
	Use:   "check <complaint...>",
	Short: "Print the questionnaire selected for a chief complaint",
	Long: `Resolve a chief complaint to a symptom domain and print the ten
questions the symptom checker would ask, without starting the UI.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runCheck(cmd.OutOrStdout(), strings.Join(args, " "), asJSON)
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print machine-readable JSON")
}

type checkResult struct {
	ChiefComplaint string             `json:"chief_complaint"`
	Domain         catalog.Domain     `json:"domain"`
	Questions      []catalog.Question `json:"questions"`
}

func runCheck(w io.Writer, complaint string, asJSON bool) error {
	sess := assessment.NewSession(selector.New(catalog.Default()))
	st, err := sess.Start(complaint)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(checkResult{
			ChiefComplaint: st.ChiefComplaint,
			Domain:         st.Domain,
			Questions:      st.Questions,
		})
	}

	fmt.Fprintf(w, "Complaint: %s\n", st.ChiefComplaint)
	fmt.Fprintf(w, "Focus:     %s\n\n", catalog.DomainDisplayName(st.Domain))
	for i, q := range st.Questions {
		printQuestion(w, i+1, len(st.Questions), q, "")
	}
	return nil
}

// printQuestion writes a numbered question with its lettered options. The
// option whose key equals chosen is marked.
func printQuestion(w io.Writer, n, total int, q catalog.Question, chosen string) {
	fmt.Fprintf(w, "── Question %d/%d (%s) ──\n", n, total, q.ID)
	fmt.Fprintln(w, q.Text)
	for _, o := range q.Options {
		mark := " "
		if o.Key == chosen {
			mark = "●"
		}
		fmt.Fprintf(w, "  %s %s) %s\n", mark, strings.ToUpper(o.Key), o.Text)
	}
	fmt.Fprintln(w)
}
