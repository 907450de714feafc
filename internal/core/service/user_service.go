package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

// UserService implements profile reads, updates and account deletion. Account
// deletion cascades explicitly: memberships and expenses go with the user.
type UserService struct {
	users    ports.UserRepository
	groups   ports.GroupRepository
	expenses ports.ExpenseRepository
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, groups ports.GroupRepository, expenses ports.ExpenseRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, groups: groups, expenses: expenses, log: log}
}

func (s *UserService) GetUser(ctx context.Context, ident ports.Identity, id string) (*domain.User, error) {
	if !ident.IsAdmin() && ident.UserID != id {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, ident ports.Identity, id, name, email string) (*domain.User, error) {
	if !ident.IsAdmin() && ident.UserID != id {
		return nil, domain.ErrForbidden
	}
	if name == "" || email == "" {
		return nil, domain.ErrValidation
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, ident ports.Identity, id string) error {
	if !ident.IsAdmin() && ident.UserID != id {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.groups.RemoveUserMemberships(ctx, id); err != nil {
		return err
	}
	if err := s.expenses.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("deleted_by", ident.UserID).Msg("user deleted")
	return nil
}
