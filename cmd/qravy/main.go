package main

import (
	"os"

	"github.com/spf13/cobra"

	"qravy/internal/interfaces/cli/migrate"
	"qravy/internal/interfaces/cli/server"
	"qravy/internal/interfaces/cli/token"
	"qravy/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "qravy",
		Short:        "Qravy - multi-location menu availability service",
		Long:         `Qravy serves tenant menus resolved per location and channel, with bulk availability tools for branch staff.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
