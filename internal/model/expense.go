package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("empty title")
	ErrNegativeAmount = errors.New("negative amount")
	ErrEmptyCategory  = errors.New("empty category")
	ErrZeroDate       = errors.New("zero date")
	ErrDuplicateID    = errors.New("duplicate expense id")
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Money is a monetary value in minor units (cents).
type Money struct {
	Cents int64
}

// String renders the value for display, e.g. 1234 -> "$12.34".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON encodes the value as a bare number of cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.Cents, 10)), nil
}

// UnmarshalJSON decodes a bare number of cents. Fractional amounts are
// rejected; the wire contract is integer minor units.
func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("amount must be an integer number of cents: %w", err)
	}
	m.Cents = cents
	return nil
}

// Date is a calendar date with day precision.
type Date struct {
	time.Time
}

// NewDate creates a Date at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String renders the date in the wire format.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string, rejecting values that do not
// name a real calendar date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Expense represents a single recorded transaction.
type Expense struct {
	Date     Date   `json:"date"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
	ID       int    `json:"id"`
}

// Validate checks that the expense is well-formed.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("expense %d: %w", e.ID, ErrEmptyTitle)
	}
	if e.Amount.Cents < 0 {
		return fmt.Errorf("expense %d: %w", e.ID, ErrNegativeAmount)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("expense %d: %w", e.ID, ErrEmptyCategory)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("expense %d: %w", e.ID, ErrZeroDate)
	}
	return nil
}

// ValidateAll checks every record and requires ids to be unique across the
// dataset.
func ValidateAll(expenses []Expense) error {
	seen := make(map[int]struct{}, len(expenses))
	for _, e := range expenses {
		if err := e.Validate(); err != nil {
			return err
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("expense %d: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
