package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func withheldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withheld [amount]",
		Short: "Show or set the total tax withheld",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(args) == 0 {
				amount, err := store.GetTaxWithheld(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("tax withheld  $%s\n", amount.StringFixed(2))
				return nil
			}

			amount, err := parseAmount(args[0], "tax withheld")
			if err != nil {
				return err
			}
			if err := store.SetTaxWithheld(ctx, amount); err != nil {
				return err
			}
			fmt.Printf("%s tax withheld = $%s\n", cli.GreenStyle.Render(cli.CompleteIcon), amount.StringFixed(2))
			return nil
		},
	}

	return cmd
}

func offsetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offsets",
		Short: "Manage named tax offsets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name> <amount>",
		Short: "Record a named tax offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			amount, err := parseAmount(args[1], "offset")
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveOffset(ctx, args[0], amount); err != nil {
				return err
			}
			fmt.Printf("%s %s = $%s\n", cli.GreenStyle.Render(cli.CompleteIcon), args[0], amount.StringFixed(2))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded offsets",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			offsets, err := store.GetOffsets(ctx)
			if err != nil {
				return err
			}
			if len(offsets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no offsets recorded"))
				return nil
			}

			names := make([]string, 0, len(offsets))
			for name := range offsets {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%-18s $%s\n", name, offsets[name].StringFixed(2))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a recorded offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteOffset(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	})

	return cmd
}
