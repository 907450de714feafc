package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// UserService defines use-case operations for user profiles. A caller may
// act on their own account; admins may act on any account.
type UserService interface {
	GetUser(ctx context.Context, ident Identity, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, ident Identity, id, name, email string) (*domain.User, error)
	// DeleteUser removes the account and cascades group memberships and
	// expenses attributed to it.
	DeleteUser(ctx context.Context, ident Identity, id string) error
}
