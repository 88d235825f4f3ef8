package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		ID:       1,
		Title:    "Grocery Shopping",
		Amount:   Money{Cents: 8450},
		Category: "Food",
		Date:     NewDate(2025, 6, 2),
	}

	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(*Expense) {},
		},
		{
			name:   "zero amount is allowed",
			mutate: func(e *Expense) { e.Amount = Money{} },
		},
		{
			name:    "empty title",
			mutate:  func(e *Expense) { e.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			mutate:  func(e *Expense) { e.Title = "   " },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative amount",
			mutate:  func(e *Expense) { e.Amount = Money{Cents: -1} },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "empty category",
			mutate:  func(e *Expense) { e.Category = "" },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "zero date",
			mutate:  func(e *Expense) { e.Date = Date{} },
			wantErr: ErrZeroDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)

			err := e.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAll(t *testing.T) {
	expenses := []Expense{
		{ID: 1, Title: "Coffee Shop", Amount: Money{Cents: 980}, Category: "Food", Date: NewDate(2025, 6, 9)},
		{ID: 2, Title: "Bus Fare", Amount: Money{Cents: 275}, Category: "Transport", Date: NewDate(2025, 6, 16)},
	}
	assert.NoError(t, ValidateAll(expenses))
	assert.NoError(t, ValidateAll(nil))

	t.Run("duplicate ids", func(t *testing.T) {
		dup := append([]Expense{}, expenses...)
		dup = append(dup, Expense{ID: 1, Title: "Bakery", Amount: Money{Cents: 1240}, Category: "Food", Date: NewDate(2025, 6, 24)})
		assert.ErrorIs(t, ValidateAll(dup), ErrDuplicateID)
	})

	t.Run("invalid record", func(t *testing.T) {
		bad := append([]Expense{}, expenses...)
		bad = append(bad, Expense{ID: 3, Category: "Food", Date: NewDate(2025, 6, 24)})
		assert.ErrorIs(t, ValidateAll(bad), ErrEmptyTitle)
	})
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		want  string
		cents int64
	}{
		{want: "$0.00", cents: 0},
		{want: "$0.05", cents: 5},
		{want: "$12.34", cents: 1234},
		{want: "$1000.00", cents: 100000},
		{want: "-$12.34", cents: -1234},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money{Cents: tt.cents}.String())
	}
}

func TestMoneyJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(Money{Cents: 1850})
		require.NoError(t, err)
		assert.Equal(t, "1850", string(data))

		var m Money
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, int64(1850), m.Cents)
	})

	t.Run("rejects fractional amounts", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte("18.50"), &m))
	})

	t.Run("rejects strings", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`"1850"`), &m))
	})
}

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "valid date", payload: `"2025-06-02"`},
		{name: "leap day", payload: `"2024-02-29"`},
		{name: "not a calendar date", payload: `"2025-02-30"`, wantErr: true},
		{name: "invalid month", payload: `"2025-13-01"`, wantErr: true},
		{name: "wrong layout", payload: `"06/02/2025"`, wantErr: true},
		{name: "not a string", payload: `20250602`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.payload), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := json.Marshal(d)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, string(data))
		})
	}
}

func TestExpenseJSONDecode(t *testing.T) {
	payload := `{"id":5,"title":"Uber Ride","amount":1850,"category":"Transport","date":"2025-06-07"}`

	var e Expense
	require.NoError(t, json.Unmarshal([]byte(payload), &e))

	assert.Equal(t, 5, e.ID)
	assert.Equal(t, "Uber Ride", e.Title)
	assert.Equal(t, int64(1850), e.Amount.Cents)
	assert.Equal(t, "Transport", e.Category)
	assert.Equal(t, "2025-06-07", e.Date.String())
}
