package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/config"
	"github.com/anupamd/studypulse/internal/monitor"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studypulse",
	Short: "Cognitive load monitoring for study sessions",
	Long:  "StudyPulse watches study-session behavior, estimates cognitive load, assesses burnout risk, and suggests workload adaptations.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPULSE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides STUDYPULSE_CONFIG env var)")
	rootCmd.PersistentFlags().String("user", "default", "User the command applies to")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYPULSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func loadAppConfig(cmd *cobra.Command) (config.Config, error) {
	flagPath, _ := cmd.Flags().GetString("config")
	return config.Load(config.Resolve(flagPath))
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// app bundles everything a command needs against one open store.
type app struct {
	store    *store.Store
	cfg      config.Config
	log      zerolog.Logger
	assessor *burnout.Assessor
	miner    *patterns.Miner
	service  *monitor.Service
	userID   string
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	log := newLogger(cmd)
	assessor := burnout.NewAssessor(cfg.Burnout, s.Metrics(), s.Sessions(), s.Assessments(), log)
	miner := patterns.NewMiner(cfg.Patterns, s.Metrics(), s.Patterns(), log)
	service := monitor.NewService(s, assessor, miner, cfg.Load, cfg.Patterns, log)
	userID, _ := cmd.Flags().GetString("user")

	return &app{
		store:    s,
		cfg:      cfg,
		log:      log,
		assessor: assessor,
		miner:    miner,
		service:  service,
		userID:   userID,
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}
