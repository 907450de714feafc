package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

// ExpenseService implements expense CRUD. Reads are scoped to the caller
// unless the caller is an admin; mutations require ownership.
type ExpenseService struct {
	expenses ports.ExpenseRepository
	recorder ActivityRecorder
	log      zerolog.Logger
}

func NewExpenseService(expenses ports.ExpenseRepository, recorder ActivityRecorder, log zerolog.Logger) *ExpenseService {
	return &ExpenseService{expenses: expenses, recorder: recorder, log: log}
}

func (s *ExpenseService) ListExpenses(ctx context.Context, ident ports.Identity) ([]domain.Expense, error) {
	if ident.IsAdmin() {
		return s.expenses.ListAll(ctx)
	}
	return s.expenses.ListByUser(ctx, ident.UserID)
}

func (s *ExpenseService) GetExpense(ctx context.Context, ident ports.Identity, id string) (*domain.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() && expense.UserID != ident.UserID {
		return nil, domain.ErrForbidden
	}
	return expense, nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, ident ports.Identity, input ports.ExpenseInput) (*domain.Expense, error) {
	if input.Title == "" || input.AmountCents <= 0 {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	expense := &domain.Expense{
		Title:       input.Title,
		AmountCents: input.AmountCents,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
		UserID:      ident.UserID,
		GroupID:     input.GroupID,
		CreatedAt:   now,
	}
	if expense.Category == "" {
		expense.Category = domain.DefaultExpenseCategory
	}
	if expense.Date.IsZero() {
		expense.Date = now
	}

	created, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Enqueue(domain.Activity{
			ActorID:   ident.UserID,
			Action:    domain.ActivityExpenseAdded,
			Entity:    "expense",
			EntityID:  created.ID,
			Timestamp: now,
		})
	}
	s.log.Info().Str("expense_id", created.ID).Str("user_id", ident.UserID).Int64("amount_cents", created.AmountCents).Msg("expense created")

	return created, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, ident ports.Identity, id string, input ports.ExpenseInput) (*domain.Expense, error) {
	if input.Title == "" || input.AmountCents <= 0 {
		return nil, domain.ErrValidation
	}

	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() && expense.UserID != ident.UserID {
		return nil, domain.ErrForbidden
	}

	expense.Title = input.Title
	expense.AmountCents = input.AmountCents
	expense.Description = input.Description
	expense.GroupID = input.GroupID
	if input.Category != "" {
		expense.Category = input.Category
	}
	if !input.Date.IsZero() {
		expense.Date = input.Date
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, ident ports.Identity, id string) error {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !ident.IsAdmin() && expense.UserID != ident.UserID {
		return domain.ErrForbidden
	}
	return s.expenses.Delete(ctx, id)
}
