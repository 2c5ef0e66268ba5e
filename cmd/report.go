package main

import (
	"assetledger/server"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	reportAssignments = "assignments"
	reportReturns     = "returns"
	reportSummary     = "summary"
)

var ReportCmd = &cobra.Command{
	Use:       "report {assignments|returns|summary}",
	Short:     "Print a report from the persisted assets as JSON.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{reportAssignments, reportReturns, reportSummary},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		engine, err := server.NewEngine(ctx, cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		var report interface{}
		switch args[0] {
		case reportAssignments:
			report, err = engine.Service.AssignmentHistory(ctx)
		case reportReturns:
			report, err = engine.Service.ReturnHistory(ctx)
		case reportSummary:
			report, err = engine.Service.Summary(ctx)
		}
		if err != nil {
			return errors.Wrapf(err, "build %s report", args[0])
		}

		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode report")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
