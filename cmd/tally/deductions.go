package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/checklist"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func deductionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deductions",
		Short: "Manage entered deduction claims",
	}

	cmd.AddCommand(deductionsSetCmd())
	cmd.AddCommand(deductionsListCmd())
	cmd.AddCommand(deductionsRemoveCmd())

	return cmd
}

func deductionsSetCmd() *cobra.Command {
	var (
		docs      int
		priorYear string
		workpaper bool
	)

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Record the deduction claim for a category code",
		Long: `Records the claimed amount for a D-item category. A claim only counts as
complete once its workpaper is flagged done with --workpaper.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			category := args[0]

			if _, ok := checklist.DefaultCatalogue().Lookup(category); !ok {
				return common.NewUserError(
					fmt.Sprintf("unknown category code %q, see 'tally categories'", category),
					common.ErrUnknownCategory)
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			entry := model.DeductionEntry{
				Amount:            amount,
				DocumentCount:     docs,
				WorkpaperComplete: workpaper,
			}
			if priorYear != "" {
				prior, err := parseAmount(priorYear, "prior year amount")
				if err != nil {
					return err
				}
				entry.PriorYearAmount = &prior
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveDeductionEntry(ctx, category, entry); err != nil {
				return err
			}

			fmt.Printf("%s %s = $%s\n", cli.GreenStyle.Render(cli.CompleteIcon), category, amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().IntVar(&docs, "docs", 0, "number of supporting documents attached")
	cmd.Flags().StringVar(&priorYear, "prior-year", "", "amount claimed last year")
	cmd.Flags().BoolVar(&workpaper, "workpaper", false, "the substantiation workpaper is complete")

	return cmd
}

func deductionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entered deduction claims",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.GetDeductionEntries(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no deductions entered yet"))
				return nil
			}

			codes := make([]string, 0, len(entries))
			for code := range entries {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			for _, code := range codes {
				entry := entries[code]
				workpaper := cli.RedStyle.Render("workpaper pending")
				if entry.WorkpaperComplete {
					workpaper = cli.GreenStyle.Render("workpaper done")
				}
				fmt.Printf("%-8s $%-12s docs:%d  %s\n", code, entry.Amount.StringFixed(2), entry.DocumentCount, workpaper)
			}
			return nil
		},
	}
}

func deductionsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove the deduction claim for a category code",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteDeductionEntry(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}
