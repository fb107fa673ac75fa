package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the built-in question catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List question pools (optionally one domain)",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		return listCatalog(cmd.OutOrStdout(), catalog.Default(), catalog.Domain(domain))
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Re-run catalog integrity and schema checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("catalog invalid: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d domains, %d questions\n",
			len(cat.Domains()), cat.Total())
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("domain", "", "Filter by domain (head_throat, chest, general)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func listCatalog(w io.Writer, cat *catalog.Catalog, only catalog.Domain) error {
	domains := cat.Domains()
	if only != "" {
		if len(cat.Pool(only)) == 0 {
			return fmt.Errorf("no questions found for domain %q", only)
		}
		domains = []catalog.Domain{only}
	}

	fmt.Fprintf(w, "%-7s  %-13s  %3s  %-44s  %s\n", "ID", "Domain", "Pri", "Question", "Options")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	var count int
	for _, d := range domains {
		for _, q := range cat.Pool(d) {
			text := q.Text
			if len(text) > 44 {
				text = text[:41] + "..."
			}
			fmt.Fprintf(w, "%-7s  %-13s  %3d  %-44s  %d\n",
				q.ID, catalog.DomainDisplayName(d), q.Priority, text, len(q.Options))
			count++
		}
	}

	fmt.Fprintf(w, "\n%d questions\n", count)
	return nil
}
