package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KavinduLakshith/payable-assessment/internal/model"
)

const validFeed = `[
	{"id": 1, "title": "Coffee", "category": "Food", "amount": 980, "date": "2025-06-09"},
	{"id": 2, "title": "Bus Fare", "category": "Transport", "amount": 275, "date": "2025-06-16"}
]`

func TestClientFetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantCount  int
		wantErr    error
	}{
		{
			name:       "valid feed",
			statusCode: http.StatusOK,
			body:       validFeed,
			wantCount:  2,
		},
		{
			name:       "empty feed",
			statusCode: http.StatusOK,
			body:       `[]`,
			wantCount:  0,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       `upstream exploded`,
			wantErr:    ErrUnavailable,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `missing`,
			wantErr:    ErrUnavailable,
		},
		{
			name:       "malformed json",
			statusCode: http.StatusOK,
			body:       `{not json at all`,
			wantErr:    ErrMalformed,
		},
		{
			name:       "wrong payload shape",
			statusCode: http.StatusOK,
			body:       `{"expenses": []}`,
			wantErr:    ErrMalformed,
		},
		{
			name:       "invalid record",
			statusCode: http.StatusOK,
			body:       `[{"id": 1, "title": "", "category": "Food", "amount": 980, "date": "2025-06-09"}]`,
			wantErr:    ErrMalformed,
		},
		{
			name:       "negative amount",
			statusCode: http.StatusOK,
			body:       `[{"id": 1, "title": "Refund", "category": "Food", "amount": -100, "date": "2025-06-09"}]`,
			wantErr:    ErrMalformed,
		},
		{
			name:       "duplicate ids",
			statusCode: http.StatusOK,
			body: `[
				{"id": 1, "title": "Coffee", "category": "Food", "amount": 980, "date": "2025-06-09"},
				{"id": 1, "title": "Tea", "category": "Food", "amount": 450, "date": "2025-06-10"}
			]`,
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(WithURL(server.URL), WithHTTPClient(server.Client()))
			expenses, err := client.Fetch(context.Background())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, expenses)
			assert.Len(t, expenses, tt.wantCount)
		})
	}
}

func TestClientFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	client := NewClient(WithURL(server.URL))
	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClientFetchDelay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validFeed))
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL), WithDelay(10*time.Millisecond))
	expenses, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, expenses, 2)
}

func TestClientFetchDelayCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validFeed))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithURL(server.URL), WithDelay(5*time.Second))
	_, err := client.Fetch(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClientLoad(t *testing.T) {
	t.Run("ready on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(validFeed))
		}))
		defer server.Close()

		status := NewClient(WithURL(server.URL)).Load(context.Background())

		assert.Equal(t, StateReady, status.State)
		assert.Len(t, status.Expenses, 2)
		assert.NoError(t, status.Err)
		assert.Empty(t, status.Message())
	})

	t.Run("ready on empty feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		status := NewClient(WithURL(server.URL)).Load(context.Background())

		assert.Equal(t, StateReady, status.State)
		assert.Empty(t, status.Expenses)
		assert.NotNil(t, status.Expenses)
		assert.NoError(t, status.Err)
	})

	t.Run("failed falls back", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		status := NewClient(WithURL(server.URL)).Load(context.Background())

		assert.Equal(t, StateFailed, status.State)
		assert.Equal(t, Fallback(), status.Expenses)
		require.Error(t, status.Err)
		assert.ErrorIs(t, status.Err, ErrUnavailable)
	})

	t.Run("failure message stays friendly", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		status := NewClient(WithURL(server.URL)).Load(context.Background())

		msg := status.Message()
		require.NotEmpty(t, msg)
		assert.NotContains(t, msg, "502")
		assert.NotContains(t, strings.ToLower(msg), "http")
		assert.NotContains(t, msg, server.URL)
	})
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	assert.Equal(t, DefaultURL, client.URL())

	// Zero and empty option values keep the defaults.
	client = NewClient(WithURL(""), WithDelay(0), WithTimeout(0), WithHTTPClient(nil))
	assert.Equal(t, DefaultURL, client.URL())
	assert.NotNil(t, client.httpClient)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "state(42)", State(42).String())
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Loading expenses...", Status{State: StateLoading}.Message())
	assert.Empty(t, Status{State: StateReady}.Message())
	assert.NotEmpty(t, Status{State: StateFailed}.Message())
}

func TestFallback(t *testing.T) {
	expenses := Fallback()
	require.Len(t, expenses, 20)
	require.NoError(t, model.ValidateAll(expenses))

	// Every record carries one of the four known categories.
	for _, e := range expenses {
		assert.Contains(t, []string{"Food", "Transport", "Entertainment", "Health"}, e.Category)
	}

	// Callers get an isolated copy.
	expenses[0].Title = "mutated"
	assert.Equal(t, "Grocery Shopping", Fallback()[0].Title)
}
