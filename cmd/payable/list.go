package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/KavinduLakshith/payable-assessment/internal/cli"
	"github.com/KavinduLakshith/payable-assessment/internal/config"
	"github.com/KavinduLakshith/payable-assessment/internal/filter"
	"github.com/KavinduLakshith/payable-assessment/internal/loader"
)

func listCmd() *cobra.Command {
	var (
		category string
		search   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print expenses to stdout",
		Long: `Print the expense dataset, optionally narrowed by category and search term.

The category match is exact and case-sensitive; the search term matches
case-insensitively against both title and category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			source := newExpenseSource(cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), loadBudget(cfg))
			defer cancel()

			status := loadWithSpinner(ctx, source)
			if status.State == loader.StateFailed {
				fmt.Fprintln(os.Stderr, cli.FormatWarning(status.Message()))
			}

			visible := filter.Visible(status.Expenses, category, search)

			if asJSON {
				return cli.RenderExpenseJSON(os.Stdout, visible)
			}

			if len(visible) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses match the current filters."))
				return nil
			}

			if err := cli.RenderExpenseTable(os.Stdout, visible); err != nil {
				return fmt.Errorf("failed to render expenses: %w", err)
			}

			fmt.Println()
			fmt.Println(cli.RenderSummary(len(visible), len(status.Expenses), filter.Total(visible)))

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", filter.All, "exact category to keep (All keeps everything)")
	cmd.Flags().StringVar(&search, "search", "", "substring matched against title and category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print matching expenses as JSON")

	return cmd
}

// loadWithSpinner runs the load while animating an indeterminate spinner on
// stderr, so table output on stdout stays clean.
func loadWithSpinner(ctx context.Context, source expenseSource) loader.Status {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][bold]Fetching expense feed...[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				_ = bar.Add(1)
			}
		}
	}()

	status := source.Load(ctx)

	close(done)
	_ = bar.Finish()

	return status
}
