package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/geoattend/config"
	"github.com/blogem/geoattend/database"
	"github.com/blogem/geoattend/logger"
)

const programName = "geoattend"

var globalFlags = struct {
	dbPath string
	debug  bool
}{}

// app bundles what every command needs after startup
type app struct {
	cfg config.Config
	log *zap.Logger
	db  *sql.DB
}

// bootstrap loads configuration, builds the logger and opens the migrated database
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if globalFlags.dbPath != "" {
		cfg.DatabasePath = globalFlags.dbPath
	}
	if globalFlags.debug {
		cfg.LogLevel = "debug"
	}

	if problems := cfg.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %v", problems)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := database.InitializeDatabase(cfg.DatabasePath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) Close() {
	a.db.Close()
	a.log.Sync()
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Geofenced attendance admission server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&globalFlags.dbPath, "db", "", "path to the SQLite database (overrides DATABASE_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")

	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		seedCommand(),
		backupCommand(),
		infoCommand(),
		hashSecretCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
