// Package migrate implements the `migrate` CLI command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lobelia-inc/lobelia/internal/infrastructure/config"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/database"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/models"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		Long:  `Create or update the database tables to match the current models.`,
		RunE:  run,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	logger.Info("running migrations", "environment", env, "driver", cfg.Database.Driver)

	err = database.Get().AutoMigrate(
		&models.PlanModel{},
		&models.UserAccountModel{},
		&models.SubscriptionModel{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
