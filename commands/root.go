package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"pasacalle/config"
	"pasacalle/database"
	"pasacalle/logging"
)

const serviceName = "pasacalle"

var (
	// Global flags
	configPath string
)

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "pasacalle",
	Short: "PasaCalle restaurant discovery and reservation API",
	Long: `PasaCalle serves the restaurant, dish, user and reservation API
used by the PasaCalle web and mobile clients.

Configuration is read from an optional YAML file and environment
variables (PORT, DATABASE_DSN, DB_HOST, LOG_LEVEL, ...).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
}

// setup loads the configuration, initializes logging and opens the store.
func setup() (*config.Config, *gorm.DB, *zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.Init(serviceName, cfg.Log.Env, cfg.Log.Level)
	log := logging.GetLogger()

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("database connected")
	return cfg, db, log, nil
}
