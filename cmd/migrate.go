package main

import (
	blobprovider "assetledger/providers/blobProvider"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run the postgres blob store migrations.",
	Long:  `Only needed when BLOB_DRIVER=postgres; the server also migrates on startup.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.GetMigrationsDir()
		}

		db, err := sqlx.Connect("postgres", cfg.GetDatabaseString())
		if err != nil {
			return errors.Wrap(err, "connect database")
		}
		defer db.Close()

		if err := blobprovider.MigrateUp(db, dir); err != nil {
			return errors.Wrap(err, "migrate database")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
