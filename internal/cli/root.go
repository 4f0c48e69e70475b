package cli

import (
	"fmt"
	"log/slog"

	"github.com/diegoclair/duty-roster/internal/config"
	"github.com/diegoclair/duty-roster/internal/database"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/service"
	"github.com/diegoclair/duty-roster/internal/logging"
	"github.com/diegoclair/duty-roster/migrator/sqlite"
	"github.com/spf13/cobra"
)

// app holds what every subcommand shares once flags and config are resolved.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	flagDatabase  string
	flagLogLevel  string
	flagLogFormat string
	flagDebug     bool
}

// NewRootCmd creates the root command of the roster binary.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Weekly on-call duty roster with leave reconciliation",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.flagDatabase, "db", "", "SQLite database path (overrides DATABASE_PATH)")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.flagLogFormat, "log-format", "", "Log format (text, json)")
	root.PersistentFlags().BoolVar(&a.flagDebug, "debug", false, "Shorthand for --log-level=debug")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newGenerateCmd(a),
		newReconcileCmd(a),
		newCleanupCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.flagDatabase != "" {
		cfg.DatabasePath = a.flagDatabase
	}
	if a.flagLogLevel != "" {
		cfg.LogLevel = a.flagLogLevel
	}
	if a.flagLogFormat != "" {
		cfg.LogFormat = a.flagLogFormat
	}
	if a.flagDebug {
		cfg.LogLevel = "debug"
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	return nil
}

// openDB opens the database and applies pending migrations.
func (a *app) openDB() (*database.DB, error) {
	db, err := database.New(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	a.logger.Debug("database ready", "path", a.cfg.DatabasePath)
	return db, nil
}

func (a *app) services(db *database.DB, metrics contract.Metrics) *service.Instance {
	return service.NewInstance(database.NewInstance(db), metrics, a.logger, service.Options{
		MaxIterations:         a.cfg.ResolverMaxIterations,
		CleanupInterval:       a.cfg.CleanupInterval,
		CleanupRetryDelay:     a.cfg.CleanupRetryDelay,
		CanceledRetentionDays: a.cfg.CanceledRetentionDays,
	})
}
