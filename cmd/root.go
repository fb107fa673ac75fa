package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/config"
	"github.com/abhisek/triage/internal/logging"
	"github.com/abhisek/triage/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Terminal symptom checker and triage dashboard",
	Long: `Triage is a terminal front-end for medical intake.

Patients describe a main symptom and answer a fixed set of ten
multiple-choice questions picked for it. Doctors see incoming cases
on a dashboard. Nothing here is a diagnosis.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Optional dotenv file loaded before reading TRIAGE_* variables")
	rootCmd.PersistentFlags().String("db", "", "Event log DSN (overrides TRIAGE_DB; default in-memory)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides TRIAGE_LOG_LEVEL)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// appEnv holds the dependencies built from configuration for one command.
type appEnv struct {
	cfg     *config.Config
	logger  zerolog.Logger
	store   *store.Store
	closers []io.Closer
}

// loadConfig reads configuration and applies flag overrides, which take
// priority over the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DB = db
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newAppEnv loads config, opens the log destination and, when withStore is
// set, the event log.
func newAppEnv(cmd *cobra.Command, withStore bool) (*appEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	e := &appEnv{cfg: cfg}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	level, _ := cfg.Level()
	w, err := logging.OpenFile(logPath)
	if err != nil {
		// Logging is best effort; the app works without it.
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		e.logger = zerolog.Nop()
	} else {
		e.closers = append(e.closers, w)
		e.logger = logging.New(w, level, logPath == config.StderrLog)
	}
	cmd.SetContext(logging.IntoContext(cmd.Context(), e.logger))

	if withStore {
		st, err := store.Open(cfg.DB)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = st
		e.closers = append(e.closers, st)
	}

	e.logger.Debug().
		Str("command", cmd.Name()).
		Str("db", cfg.DB).
		Bool("carry_answers", cfg.CarryAnswers).
		Msg("config loaded")
	return e, nil
}

// Close releases resources in reverse order of acquisition.
func (e *appEnv) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}
