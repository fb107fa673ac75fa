package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/app"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/selector"
	"github.com/abhisek/triage/internal/triage"
	"github.com/abhisek/triage/internal/ui/theme"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	runCmd.Flags().Bool("skip-welcome", false, "Start on the dashboard")
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	env, err := newAppEnv(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := theme.Set(env.cfg.Theme); err != nil {
		return fmt.Errorf("apply theme: %w", err)
	}

	// Only the run subcommand defines the flag; the root gets false.
	skipWelcome, _ := cmd.Flags().GetBool("skip-welcome")

	opts := app.Options{
		Selector:     selector.New(catalog.Default()),
		EventRepo:    env.store.EventRepo(),
		Logger:       env.logger,
		CarryAnswers: env.cfg.CarryAnswers,
		Cases:        triage.SeedCases(),
		SkipWelcome:  skipWelcome,
	}

	env.logger.Info().Str("theme", env.cfg.Theme).Msg("starting tui")
	if err := app.Run(cmd.Context(), opts); err != nil {
		env.logger.Error().Err(err).Msg("tui exited with error")
		return err
	}
	env.logger.Info().Msg("tui exited")
	return nil
}
