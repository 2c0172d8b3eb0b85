package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pawpath/pawpath/internal/infrastructure/config"
	"github.com/pawpath/pawpath/internal/infrastructure/database"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/seeds"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data",
		Long:  `Load fixture rows into the database. Rows that already exist are left alone.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newBusinessesCommand())
	return cmd
}

func newBusinessesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "businesses",
		Short: "Seed businesses from a YAML file",
		RunE:  runBusinesses,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBusinesses(cmd *cobra.Command, args []string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()

	fixtures, err := seeds.ParseBusinessFixtures(f)
	if err != nil {
		return err
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	created, err := seeds.SeedBusinesses(database.Get(), fixtures)
	if err != nil {
		log.Errorw("failed to seed businesses", "file", file, "error", err)
		return err
	}

	log.Infow("businesses seeded", "file", file, "rows", len(fixtures), "created", created)
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d businesses from %s\n", created, len(fixtures), file)
	return nil
}
