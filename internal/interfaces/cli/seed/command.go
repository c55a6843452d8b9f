package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"openfare/internal/infrastructure/config"
	"openfare/internal/infrastructure/database"
	"openfare/internal/infrastructure/migration"
	"openfare/internal/infrastructure/persistence/seeds"
	"openfare/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data",
		Long:  `Populate the database with demo passengers, operators, tickets, complaints, and SLA configuration. Seeding is idempotent; existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run schema migration before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}

	seeder := seeds.NewSeeder(database.Get(), log)
	if err := seeder.Seed(); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("demo data loaded")
	return nil
}
