package main

import (
	"context"
	"time"

	"github.com/KavinduLakshith/payable-assessment/internal/config"
	"github.com/KavinduLakshith/payable-assessment/internal/loader"
)

// expenseSource is anything that can produce a load outcome.
type expenseSource interface {
	Load(ctx context.Context) loader.Status
}

// newExpenseSource builds the source commands load from: the feed client,
// or the built-in dataset when offline mode is on.
func newExpenseSource(cfg config.Config) expenseSource {
	if cfg.Offline {
		return loader.Static{Expenses: loader.Fallback()}
	}

	return loader.NewClient(
		loader.WithURL(cfg.FeedURL),
		loader.WithTimeout(cfg.Timeout),
		loader.WithDelay(cfg.Delay),
	)
}

// loadBudget bounds the whole load attempt: the fetch timeout plus any
// artificial delay, with slack for decoding.
func loadBudget(cfg config.Config) time.Duration {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return timeout + cfg.Delay + 5*time.Second
}
