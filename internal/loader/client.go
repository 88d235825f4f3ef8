// Package loader fetches the expense dataset from its well-known feed URL,
// once per run. Any failure, whether transport, status, or payload, degrades
// to a built-in sample dataset so the rest of the program never has to deal
// with an absent dataset.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KavinduLakshith/payable-assessment/internal/model"
)

// DefaultURL is the well-known location of the expense feed. Flags and
// environment configuration may point the client elsewhere.
const DefaultURL = "https://raw.githubusercontent.com/KavinduLakshith/payable-assessment/main/data/expenses.json"

// maxFeedBytes caps how much of a response body is decoded. The feed is a
// small JSON document; anything larger is not our feed.
const maxFeedBytes = 1 << 20

// Load failure families callers can branch on with errors.Is.
var (
	// ErrUnavailable means the feed could not be reached or answered with a
	// non-success status.
	ErrUnavailable = errors.New("expense feed unavailable")

	// ErrMalformed means the feed answered but the payload was not a
	// well-formed expense dataset.
	ErrMalformed = errors.New("expense feed malformed")
)

// State describes where a load attempt stands.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Status is the outcome of a load attempt. In StateFailed, Expenses holds
// the fallback dataset so callers always have something to show, and Err
// retains the cause for logging.
type Status struct {
	State    State
	Expenses []model.Expense
	Err      error
}

// Message returns the user-facing note for this status. It never echoes
// technical detail; Err carries that for the logs.
func (s Status) Message() string {
	switch s.State {
	case StateLoading:
		return "Loading expenses..."
	case StateFailed:
		return "Couldn't load the expense feed. Showing built-in sample data."
	default:
		return ""
	}
}

// Client loads the expense dataset over HTTP.
type Client struct {
	url        string
	delay      time.Duration
	httpClient *http.Client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithURL points the client at a different feed location. An empty URL
// keeps the default.
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithTimeout bounds how long a single fetch may take.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithDelay inserts an artificial pause before the fetch so the loading
// state stays visible during demos.
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a feed client for the default URL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url: DefaultURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the feed location the client will fetch from.
func (c *Client) URL() string {
	return c.url
}

// Fetch retrieves and validates the dataset. Errors wrap ErrUnavailable or
// ErrMalformed depending on which side misbehaved.
func (c *Client) Fetch(ctx context.Context) ([]model.Expense, error) {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching expense feed", "url", c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: feed returned %d - %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var expenses []model.Expense
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes)).Decode(&expenses); err != nil {
		return nil, fmt.Errorf("%w: failed to decode feed: %v", ErrMalformed, err)
	}

	if err := model.ValidateAll(expenses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if expenses == nil {
		expenses = []model.Expense{}
	}

	return expenses, nil
}

// Load runs Fetch and folds the result into a Status. It never returns an
// error: a failed fetch yields StateFailed with the fallback dataset. An
// empty feed is a valid outcome and yields StateReady with no expenses.
func (c *Client) Load(ctx context.Context) Status {
	expenses, err := c.Fetch(ctx)
	if err != nil {
		slog.Warn("expense feed load failed, using fallback dataset",
			"url", c.url,
			"error", err)
		return Status{State: StateFailed, Expenses: Fallback(), Err: err}
	}

	slog.Debug("expense feed loaded", "url", c.url, "count", len(expenses))
	return Status{State: StateReady, Expenses: expenses}
}
