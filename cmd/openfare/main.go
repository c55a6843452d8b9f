package main

import (
	"os"

	"github.com/spf13/cobra"

	"openfare/internal/interfaces/cli/migrate"
	"openfare/internal/interfaces/cli/seed"
	"openfare/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "openfare",
		Short: "OpenFare - bus ticket refund transparency platform",
		Long:  `OpenFare tracks bus ticket cancellations and refunds, scores operators on how they honor refund deadlines, and gives passengers and regulators a shared view of complaints.`,
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
