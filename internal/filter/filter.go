// Package filter derives the visible subset of an expense dataset from the
// current filter criteria. Everything here is a pure projection: no state,
// no mutation of inputs, recomputed from scratch on every call.
package filter

import (
	"strings"

	"github.com/KavinduLakshith/payable-assessment/internal/model"
)

// All is the sentinel category label meaning "no category restriction".
const All = "All"

// Visible returns the expenses matching both criteria, preserving dataset
// order. A category of All disables the category check; an empty term
// disables the search check. The category check is an exact, case-sensitive
// match; the search check is a case-insensitive substring match against
// title or category.
func Visible(dataset []model.Expense, category, term string) []model.Expense {
	visible := make([]model.Expense, 0, len(dataset))
	needle := strings.ToLower(term)

	for _, e := range dataset {
		if category != All && e.Category != category {
			continue
		}
		if needle != "" && !matches(e, needle) {
			continue
		}
		visible = append(visible, e)
	}

	return visible
}

func matches(e model.Expense, needle string) bool {
	return strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Category), needle)
}

// Categories returns the selectable category options for a dataset: the All
// sentinel first, then each distinct category in first-occurrence order.
// Options are drawn from the full dataset so they stay stable while the
// user filters.
func Categories(dataset []model.Expense) []string {
	categories := []string{All}
	seen := make(map[string]struct{}, len(dataset))

	for _, e := range dataset {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}

	return categories
}

// Total sums the amounts of the given expenses.
func Total(expenses []model.Expense) model.Money {
	var cents int64
	for _, e := range expenses {
		cents += e.Amount.Cents
	}
	return model.Money{Cents: cents}
}
