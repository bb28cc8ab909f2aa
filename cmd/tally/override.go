package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/model"
)

func overrideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Manage manual checklist and suggestion overrides",
		Long: `Overrides pin a manual status onto a checklist item or flag a suggestion as
implemented or dismissed. They are keyed by stable ids (e.g. income:SALARY)
and survive report regeneration; stale ids are reported and ignored, never
fatal.`,
	}

	cmd.AddCommand(overrideSetCmd())
	cmd.AddCommand(overrideClearCmd())
	cmd.AddCommand(overrideImplementCmd())
	cmd.AddCommand(overrideDismissCmd())

	return cmd
}

func overrideSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <item-id> <status>",
		Short: "Pin a manual status onto a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			status := model.ItemStatus(args[1])
			if !model.ValidItemStatus(status) {
				return fmt.Errorf("invalid status %q: must be complete, partial, missing or not_applicable", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetItemStatus(ctx, args[0], status); err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", args[0], status)
			return nil
		},
	}
}

func overrideClearCmd() *cobra.Command {
	var suggestion bool

	cmd := &cobra.Command{
		Use:   "clear <id>",
		Short: "Remove an override",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if suggestion {
				if err := store.ClearSuggestion(ctx, args[0]); err != nil {
					return err
				}
			} else if err := store.ClearItemStatus(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("cleared %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&suggestion, "suggestion", false, "clear a suggestion flag instead of an item status")

	return cmd
}

func overrideImplementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "implement <suggestion-id>",
		Short: "Flag a suggestion as acted on",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkSuggestionImplemented(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("implemented %s\n", args[0])
			return nil
		},
	}
}

func overrideDismissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <suggestion-id>",
		Short: "Flag a suggestion as not applicable to you",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.MarkSuggestionDismissed(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("dismissed %s\n", args[0])
			return nil
		},
	}
}
