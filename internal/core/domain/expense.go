package domain

import (
	"errors"
	"time"
)

var ErrExpenseNotFound = errors.New("expense not found")

const DefaultExpenseCategory = "other"

// Expense is a single spend attributed to a user, optionally scoped to a
// group. Amounts are stored in cents to keep arithmetic exact.
type Expense struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
	GroupID     string    `json:"group_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
