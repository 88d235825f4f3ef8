package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KavinduLakshith/payable-assessment/internal/cli"
	"github.com/KavinduLakshith/payable-assessment/internal/config"
	"github.com/KavinduLakshith/payable-assessment/internal/loader"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List category options",
		Long: `Display the selectable categories with how many expenses each one holds.

Options always come from the full dataset, never from a filtered view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			source := newExpenseSource(cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), loadBudget(cfg))
			defer cancel()

			status := loadWithSpinner(ctx, source)
			if status.State == loader.StateFailed {
				fmt.Fprintln(os.Stderr, cli.FormatWarning(status.Message()))
			}

			return cli.RenderCategoryTable(os.Stdout, status.Expenses)
		},
	}
}
