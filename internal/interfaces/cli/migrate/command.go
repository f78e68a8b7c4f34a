package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"gramseva/internal/infrastructure/config"
	"gramseva/internal/infrastructure/database"
	"gramseva/internal/infrastructure/migration"
	"gramseva/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply database migrations and seed the initial admin account and emergency contacts.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default admin account and emergency contacts",
		RunE:  runSeed,
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	return migration.Run(database.Get())
}

func runStatus(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	version, err := migration.Version(database.Get())
	if err != nil {
		return err
	}

	fmt.Printf("Current migration version: %d\n", version)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return err
	}
	return migration.Seed(database.Get(), cfg.Auth.Seed.AdminID, cfg.Auth.Seed.Password)
}
