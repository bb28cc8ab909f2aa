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

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage entered income amounts",
	}

	cmd.AddCommand(incomeSetCmd())
	cmd.AddCommand(incomeListCmd())
	cmd.AddCommand(incomeRemoveCmd())

	return cmd
}

func incomeSetCmd() *cobra.Command {
	var (
		docs      int
		priorYear string
	)

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Record the income amount for a category code",
		Args:  cobra.ExactArgs(2),
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

			entry := model.IncomeEntry{Amount: amount, DocumentCount: docs}
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

			if err := store.SaveIncomeEntry(ctx, category, entry); err != nil {
				return err
			}

			fmt.Printf("%s %s = $%s\n", cli.GreenStyle.Render(cli.CompleteIcon), category, amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().IntVar(&docs, "docs", 0, "number of supporting documents attached")
	cmd.Flags().StringVar(&priorYear, "prior-year", "", "amount reported last year")

	return cmd
}

func incomeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entered income amounts",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.GetIncomeEntries(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no income entered yet"))
				return nil
			}

			codes := make([]string, 0, len(entries))
			for code := range entries {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			for _, code := range codes {
				entry := entries[code]
				fmt.Printf("%-18s $%-12s docs:%d\n", code, entry.Amount.StringFixed(2), entry.DocumentCount)
			}
			return nil
		},
	}
}

func incomeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove the income entry for a category code",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteIncomeEntry(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}
