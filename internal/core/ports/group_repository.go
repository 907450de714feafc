package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// GroupRepository defines the interface for group and membership persistence.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) (*domain.Group, error)
	FindByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	Rename(ctx context.Context, id, name string) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	AddMember(ctx context.Context, groupID string, member domain.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	// RemoveUserMemberships drops the user from every group; used when a
	// user account is deleted.
	RemoveUserMemberships(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}
