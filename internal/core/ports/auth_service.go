package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser re-fetches the user behind a validated subject id so /me
	// reflects current state rather than the claim snapshot at issuance.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
