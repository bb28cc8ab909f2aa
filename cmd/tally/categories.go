package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/checklist"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category catalogue",
		RunE: func(_ *cobra.Command, _ []string) error {
			catalogue := checklist.DefaultCatalogue()

			fmt.Println(cli.SubtitleStyle.Render("categories marked * are required for most taxpayers"))
			fmt.Println(cli.BoldStyle.Render("Income"))
			printDefinitions(catalogue.ByKind(model.CategoryKindIncome))

			fmt.Println(cli.BoldStyle.Render("Deductions"))
			printDefinitions(catalogue.ByKind(model.CategoryKindDeduction))

			return nil
		},
	}
}

func printDefinitions(defs []model.TaxCategoryDefinition) {
	for _, def := range defs {
		marker := " "
		if def.Required {
			marker = cli.RedStyle.Render("*")
		}
		fmt.Printf("  %s %-18s %s\n", marker, def.Code, def.Name)
		if gate := relevanceGate(def); gate != "" {
			fmt.Printf("       %s\n", cli.SubtleStyle.Render(gate))
		}
	}
	fmt.Println()
}

func relevanceGate(def model.TaxCategoryDefinition) string {
	switch {
	case def.InvestorOnly:
		return "investors only"
	case def.LandlordOnly:
		return "rental property owners only"
	case def.BusinessOnly:
		return "business operators only"
	default:
		return ""
	}
}
