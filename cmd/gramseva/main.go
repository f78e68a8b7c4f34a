package main

import (
	"os"

	"github.com/spf13/cobra"

	"gramseva/internal/interfaces/cli/migrate"
	"gramseva/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gramseva",
		Short: "Gramseva - village help desk",
		Long:  `Gramseva is a village help desk with a rule-based chatbot, ticket submission, and an admin dashboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
