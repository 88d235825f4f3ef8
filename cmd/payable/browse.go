package main

import (
	"github.com/spf13/cobra"

	"github.com/KavinduLakshith/payable-assessment/internal/common"
	"github.com/KavinduLakshith/payable-assessment/internal/config"
	"github.com/KavinduLakshith/payable-assessment/internal/tui"
	"github.com/KavinduLakshith/payable-assessment/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse expenses interactively",
		Long: `Open the interactive expense browser.

Cycle categories with Tab, search with /, toggle help with ?, quit with q.`,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	err := tui.Run(cmd.Context(),
		tui.WithSource(newExpenseSource(cfg)),
		tui.WithTheme(themes.GetTheme(cfg.Theme)),
		tui.WithLoadTimeout(loadBudget(cfg)),
	)
	if err != nil {
		return common.NewUserError("The expense browser hit an unexpected error.", err)
	}

	return nil
}
