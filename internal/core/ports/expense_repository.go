package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// ExpenseRepository defines the interface for expense persistence.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	FindByID(ctx context.Context, id string) (*domain.Expense, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Expense, error)
	ListAll(ctx context.Context) ([]domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every expense attributed to the user; used when a
	// user account is deleted.
	DeleteByUser(ctx context.Context, userID string) error
}
