package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the full completeness report",
		Long: `Evaluates every category against your profile and entered data, applies your
overrides, and prints the checklist, score, tax estimate, risk assessment and
the recommended next action.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			r, err := generateReport(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderReport(r, report.NextAction(r)))
			return nil
		},
	}
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the completeness score breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			r, err := generateReport(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.BoxStyle.Render(cli.RenderScore(r.Score)))
			return nil
		},
	}
}

func nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the single recommended next action",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			r, err := generateReport(ctx, store)
			if err != nil {
				return err
			}

			next := report.NextAction(r)
			fmt.Println(cli.BoldStyle.Render(next.Title))
			if next.Description != "" {
				fmt.Println(cli.SubtleStyle.Render(next.Description))
			}
			if report.IsReadyForLodgment(r) {
				fmt.Println(cli.GreenStyle.Render("This return is ready for lodgment."))
			}
			return nil
		},
	}
}
