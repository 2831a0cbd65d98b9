package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/database"
	"clubhub-backend/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "clubhub",
		Short:        "Club and event management API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file (env vars override it)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, db, err := bootstrap(configPath)
				if err != nil {
					return err
				}
				defer logger.Sync() //nolint:errcheck

				if err := database.Migrate(db); err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return serve(ctx, cfg, db)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, db, err := bootstrap(configPath)
				if err != nil {
					return err
				}
				defer logger.Sync() //nolint:errcheck

				if err := database.Migrate(db); err != nil {
					return err
				}
				logger.L().Info("migration complete")
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default categories",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, db, err := bootstrap(configPath)
				if err != nil {
					return err
				}
				defer logger.Sync() //nolint:errcheck

				if err := database.Migrate(db); err != nil {
					return err
				}
				n, err := database.SeedCategories(context.Background(), db)
				if err != nil {
					return err
				}
				logger.L().Info("seed complete", zap.Int64("categories_inserted", n))
				return nil
			},
		},
	)
	return root
}

// bootstrap loads configuration, initialises the logger and opens the database.
func bootstrap(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	logger.L().Info("connected to database")
	return cfg, db, nil
}
