package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// ActivityRepository persists audit trail records.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// ListRecent returns the newest records first, at most limit of them.
	ListRecent(ctx context.Context, limit int64) ([]domain.Activity, error)
}
