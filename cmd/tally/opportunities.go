package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func opportunitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opps"},
		Short:   "Manage optimization opportunities",
	}

	cmd.AddCommand(opportunitiesAddCmd())
	cmd.AddCommand(opportunitiesListCmd())
	cmd.AddCommand(opportunitiesRemoveCmd())

	return cmd
}

func opportunitiesAddCmd() *cobra.Command {
	var (
		level       string
		savings     string
		link        string
		implemented bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record an optimization opportunity",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			priority := model.OpportunityPriority(level)
			switch priority {
			case model.OpportunityCritical, model.OpportunityHigh, model.OpportunityMedium, model.OpportunityLow:
			default:
				return fmt.Errorf("invalid level %q: must be critical, high, medium or low", level)
			}

			amount, err := parseAmount(savings, "savings")
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			opp := model.OptimizationOpportunity{
				Title:       args[0],
				Level:       priority,
				Savings:     amount,
				Link:        link,
				Implemented: implemented,
			}
			if err := store.SaveOpportunity(ctx, opp); err != nil {
				return err
			}

			fmt.Printf("%s %s\n", cli.GreenStyle.Render(cli.CompleteIcon), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "medium", "priority (critical, high, medium, low)")
	cmd.Flags().StringVar(&savings, "savings", "0", "estimated tax savings")
	cmd.Flags().StringVar(&link, "link", "", "action link")
	cmd.Flags().BoolVar(&implemented, "implemented", false, "the source data already reflects the action")

	return cmd
}

func opportunitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded opportunities",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			opportunities, err := store.GetOpportunities(ctx)
			if err != nil {
				return err
			}
			implemented, dismissed, err := store.GetSuggestionFlags(ctx)
			if err != nil {
				return err
			}

			if len(opportunities) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no opportunities recorded"))
				return nil
			}

			implementedSet := toSet(implemented)
			dismissedSet := toSet(dismissed)
			for _, opp := range opportunities {
				state := ""
				switch {
				case dismissedSet[opp.ID]:
					state = cli.SubtleStyle.Render("dismissed")
				case implementedSet[opp.ID] || opp.Implemented:
					state = cli.GreenStyle.Render("implemented")
				}
				fmt.Printf("%s %-10s $%-10s %s %s\n",
					cli.BulbIcon, opp.Level, opp.Savings.StringFixed(2), opp.Title, state)
				fmt.Printf("   %s\n", cli.SubtleStyle.Render("id: "+opp.ID))
			}
			return nil
		},
	}
}

func opportunitiesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an opportunity and its flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteOpportunity(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
