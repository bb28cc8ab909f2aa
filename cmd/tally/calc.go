package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/tax"
)

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Stateless tax calculators",
		Long:  `Pure calculators over the current-year brackets. Nothing is read from or written to the session database.`,
	}

	cmd.AddCommand(calcTaxCmd())
	cmd.AddCommand(calcFrankingCmd())
	cmd.AddCommand(calcImpactCmd())

	return cmd
}

func calcTaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tax <taxable-income>",
		Short: "Progressive tax and Medicare levy on a taxable income",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			income, err := parseAmount(args[0], "taxable income")
			if err != nil {
				return err
			}

			brackets := tax.DefaultBrackets()
			payable, err := brackets.ProgressiveTax(income)
			if err != nil {
				return err
			}
			marginal, err := brackets.MarginalRate(income)
			if err != nil {
				return err
			}
			levy, err := tax.DefaultMedicarePolicy().MedicareLevy(income)
			if err != nil {
				return err
			}

			fmt.Printf("taxable income  $%s\n", income.StringFixed(2))
			fmt.Printf("tax payable     $%s\n", payable.StringFixed(2))
			fmt.Printf("medicare levy   $%s\n", levy.StringFixed(2))
			fmt.Printf("total           $%s\n", payable.Add(levy).StringFixed(2))
			fmt.Printf("marginal rate   %s%%\n", marginal.Mul(decimal.NewFromInt(100)).StringFixed(0))
			return nil
		},
	}
}

func calcFrankingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "franking <dividend> <franking-percent>",
		Short: "Franking credit and grossed-up amount of a cash dividend",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0], "dividend")
			if err != nil {
				return err
			}
			percent, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid franking percent %q: %w", args[1], err)
			}

			result, err := tax.FrankingFromDividend(amount, percent)
			if err != nil {
				return err
			}

			fmt.Printf("franked amount     $%s\n", result.FrankedAmount.StringFixed(2))
			fmt.Printf("unfranked amount   $%s\n", result.UnfrankedAmount.StringFixed(2))
			fmt.Printf("franking credit    $%s\n", result.FrankingCredit.StringFixed(2))
			fmt.Printf("grossed-up amount  $%s\n", result.GrossedUpDividend.StringFixed(2))
			return nil
		},
	}
}

func calcImpactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impact <dividend> <franking-percent> <total-income>",
		Short: "Net tax position of a franked dividend at your marginal rate",
		Long: `Computes the franking breakdown of the dividend, then the tax on the
grossed-up amount at the marginal rate for the given total taxable income
(which must already include the grossed-up dividend). A negative net position
is a refundable excess credit.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0], "dividend")
			if err != nil {
				return err
			}
			percent, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid franking percent %q: %w", args[1], err)
			}
			totalIncome, err := parseAmount(args[2], "total income")
			if err != nil {
				return err
			}

			franking, err := tax.FrankingFromDividend(amount, percent)
			if err != nil {
				return err
			}
			impact, err := tax.DefaultBrackets().TaxImpact(franking.GrossedUpDividend, franking.FrankingCredit, totalIncome)
			if err != nil {
				return err
			}

			fmt.Printf("grossed-up amount   $%s\n", franking.GrossedUpDividend.StringFixed(2))
			fmt.Printf("franking credit     $%s\n", franking.FrankingCredit.StringFixed(2))
			fmt.Printf("marginal rate       %s%%\n", impact.MarginalRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
			fmt.Printf("tax on grossed-up   $%s\n", impact.TaxOnGrossedUp.StringFixed(2))
			if impact.NetTaxPosition.IsNegative() {
				fmt.Printf("net position        $%s refundable\n", impact.NetTaxPosition.Abs().StringFixed(2))
			} else {
				fmt.Printf("net position        $%s payable\n", impact.NetTaxPosition.StringFixed(2))
			}
			return nil
		},
	}
}
