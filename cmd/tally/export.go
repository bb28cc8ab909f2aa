package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <checklist|summary>",
		Short: "Export the checklist or the accountant summary as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			r, err := generateReport(ctx, store)
			if err != nil {
				return err
			}

			var text string
			switch args[0] {
			case "checklist":
				text = r.Export.Checklist
			case "summary":
				text = r.Export.AccountantSummary
			default:
				return fmt.Errorf("unknown export surface %q: use checklist or summary", args[0])
			}

			if output == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
