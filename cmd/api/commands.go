package main

import (
	"github.com/spf13/cobra"
)

var (
	portFlag       string
	logLevelFlag   string
	directoryFlag  string
	advisoryMock   bool
	seedSkipTenant bool

	rootCmd = &cobra.Command{
		Use:          "resident-api",
		Short:        "Resident maintenance booking service",
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe, // serve.go
	}

	seedDirectoryCmd = &cobra.Command{
		Use:   "seed-directory",
		Short: "Load the bundled demo accounts and tenants into DynamoDB",
		Args:  cobra.NoArgs,
		RunE:  runSeedDirectory, // seed.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error). Overrides LOG_LEVEL.")

	serveCmd.Flags().StringVarP(&portFlag, "port", "p", "", "Listen port. Overrides PORT.")
	serveCmd.Flags().StringVar(&directoryFlag, "directory", "", "Account directory backend (static or dynamodb). Overrides DIRECTORY_BACKEND.")
	serveCmd.Flags().BoolVar(&advisoryMock, "advisory-mock", false, "Answer advisory prompts locally. Overrides ADVISORY_MOCK.")

	seedDirectoryCmd.Flags().BoolVar(&seedSkipTenant, "accounts-only", false, "Seed accounts but not tenancy records.")

	rootCmd.AddCommand(serveCmd, seedDirectoryCmd)
}
