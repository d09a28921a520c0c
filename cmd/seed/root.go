package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/logging"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/config"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/repositories/repomanager"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/seed"
)

var (
	dataFile string
	dsn      string
	migrate  bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the Noteful database to a known dataset",
	Long: `seed empties the users, folders, tags and notes tables and reloads them
from a YAML dataset. Without --file the built-in sample data is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
		ctx := cmd.Context()

		ds, err := seed.Load(dataFile)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		db, err := repomanager.Open(ctx, dsn)
		if err != nil {
			return fmt.Errorf("db init error: %w", err)
		}
		defer db.Close()

		if migrate {
			if err := repomanager.NewPostgresRepositoryManager().RunMigrations(ctx, db); err != nil {
				return fmt.Errorf("migrations error: %w", err)
			}
		}

		_, err = seed.NewSeeder(db, logger).Apply(ctx, ds)
		return err
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDSN() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	var c config.Config
	c.LoadDefaults()
	return c.DatabaseDSN
}

func init() {
	rootCmd.Flags().StringVarP(&dataFile, "file", "f", "", "YAML dataset to load instead of the built-in one")
	rootCmd.Flags().StringVarP(&dsn, "dsn", "d", defaultDSN(), "PostgreSQL connection string (defaults to $DATABASE_URL)")
	rootCmd.Flags().BoolVar(&migrate, "migrate", true, "apply schema migrations before seeding")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
