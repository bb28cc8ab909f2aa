package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the taxpayer profile",
		Long: `The profile gates which catalogue categories apply to you: investment
categories only appear for investors, rental categories for landlords, and
business income for business operators. Excluded codes never appear at all.`,
	}

	cmd.AddCommand(profileSetCmd())
	cmd.AddCommand(profileShowCmd())

	return cmd
}

func profileSetCmd() *cobra.Command {
	var (
		occupation  string
		arrangement string
		investments bool
		rental      bool
		business    bool
		excluded    []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the stored profile",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile := model.UserProfile{
				Occupation:         occupation,
				WorkArrangement:    arrangement,
				HasInvestments:     investments,
				HasRentalProperty:  rental,
				RunsBusiness:       business,
				ExcludedCategories: excluded,
			}
			if err := store.SaveProfile(ctx, profile); err != nil {
				return err
			}

			fmt.Println(cli.GreenStyle.Render(cli.CompleteIcon) + " profile saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&occupation, "occupation", "", "occupation")
	cmd.Flags().StringVar(&arrangement, "arrangement", "employee", "work arrangement (employee, contractor, mixed)")
	cmd.Flags().BoolVar(&investments, "investments", false, "holds shares or other investments")
	cmd.Flags().BoolVar(&rental, "rental", false, "owns a rental property")
	cmd.Flags().BoolVar(&business, "business", false, "runs a business")
	cmd.Flags().StringSliceVar(&excluded, "exclude", nil, "category codes to exclude")

	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.GetProfile(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("occupation    %s\n", profile.Occupation)
			fmt.Printf("arrangement   %s\n", profile.WorkArrangement)
			fmt.Printf("investments   %t\n", profile.HasInvestments)
			fmt.Printf("rental        %t\n", profile.HasRentalProperty)
			fmt.Printf("business      %t\n", profile.RunsBusiness)
			if len(profile.ExcludedCategories) > 0 {
				fmt.Printf("excluded      %v\n", profile.ExcludedCategories)
			}
			return nil
		},
	}
}
