package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pawpath/pawpath/internal/interfaces/cli/migrate"
	"github.com/pawpath/pawpath/internal/interfaces/cli/seed"
	"github.com/pawpath/pawpath/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pawpath",
		Short: "PawPath - content cache and admin API for pet businesses",
		Long:  `PawPath serves cached AI-generated pet content and the business admin API, with migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
