package main

import (
	"assetledger/server"

	"github.com/spf13/cobra"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		srv, err := server.ServerInit(ctx, cfg)
		if err != nil {
			return err
		}
		go srv.Start()
		srv.Logger.GetLogger().Info("server initialized...")

		<-ctx.Done()
		srv.Stop()
		return nil
	},
}
