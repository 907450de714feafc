package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// GroupService defines use-case operations for groups and membership. Every
// mutating operation takes the caller Identity and enforces ownership.
type GroupService interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
	GetGroup(ctx context.Context, id string) (*domain.Group, error)
	CreateGroup(ctx context.Context, ident Identity, name string) (*domain.Group, error)
	RenameGroup(ctx context.Context, ident Identity, id, name string) error
	DeleteGroup(ctx context.Context, ident Identity, id string) error
	AddMember(ctx context.Context, ident Identity, groupID, email string) error
	RemoveMember(ctx context.Context, ident Identity, groupID, userID string) error
	// TogglePin flips the pinned flag and returns the new value.
	TogglePin(ctx context.Context, ident Identity, groupID string) (bool, error)
}
