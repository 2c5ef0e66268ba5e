package main

import (
	"assetledger/providers"
	configprovider "assetledger/providers/configProvider"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfg providers.ConfigProvider

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:           "assetledger",
		Short:         "Asset lifecycle and valuation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg = configprovider.NewConfigProvider()
			return cfg.LoadEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ServeCmd.RunE(cmd, args)
		},
	}

	MigrateCmd.Flags().String("dir", "", "Directory containing the migration files (defaults to MIGRATIONS_DIR)")
	rootCmd.AddCommand(ServeCmd, MigrateCmd, ReportCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
