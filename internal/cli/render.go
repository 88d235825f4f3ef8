package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KavinduLakshith/payable-assessment/internal/filter"
	"github.com/KavinduLakshith/payable-assessment/internal/model"
)

// RenderExpenseTable writes expenses as an aligned table.
func RenderExpenseTable(w io.Writer, expenses []model.Expense) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Date"),
		TableHeaderStyle.Render("Title"),
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Amount"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 30),
		strings.Repeat("-", 15),
		strings.Repeat("-", 10))

	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Date, e.Title, e.Category, e.Amount)
	}

	return tw.Flush()
}

// RenderExpenseJSON writes expenses as indented JSON.
func RenderExpenseJSON(w io.Writer, expenses []model.Expense) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(expenses)
}

// RenderCategoryTable writes the selectable category options with per-option
// counts and totals, always drawn from the full dataset.
func RenderCategoryTable(w io.Writer, dataset []model.Expense) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Count"),
		TableHeaderStyle.Render("Total"))
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		strings.Repeat("-", 15),
		strings.Repeat("-", 5),
		strings.Repeat("-", 10))

	for _, category := range filter.Categories(dataset) {
		subset := filter.Visible(dataset, category, "")
		fmt.Fprintf(tw, "%s\t%d\t%s\n", category, len(subset), filter.Total(subset))
	}

	return tw.Flush()
}

// RenderSummary describes the visible subset relative to the full dataset.
func RenderSummary(visible, total int, amount model.Money) string {
	return SubtitleStyle.UnsetMargins().Render(
		fmt.Sprintf("%d of %d expenses | total %s", visible, total, amount))
}
