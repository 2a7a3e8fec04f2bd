package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lobelia-inc/lobelia/internal/interfaces/cli/migrate"
	"github.com/lobelia-inc/lobelia/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lobelia",
		Short: "Lobelia - subscription management service",
		Long:  `Lobelia is a subscription management service with plan, user account and subscription lifecycle APIs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
