package ports

import (
	"context"
	"time"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// ExpenseInput carries the data needed to create or update an expense.
type ExpenseInput struct {
	Title       string
	AmountCents int64
	Category    string
	Description string
	Date        time.Time
	GroupID     string
}

// ExpenseService defines use-case operations for expenses. Reads are scoped
// to the caller unless the caller is an admin; mutations require ownership.
type ExpenseService interface {
	ListExpenses(ctx context.Context, ident Identity) ([]domain.Expense, error)
	GetExpense(ctx context.Context, ident Identity, id string) (*domain.Expense, error)
	CreateExpense(ctx context.Context, ident Identity, input ExpenseInput) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, ident Identity, id string, input ExpenseInput) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, ident Identity, id string) error
}
