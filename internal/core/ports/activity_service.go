package ports

import (
	"context"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
)

// ActivityService records and reads audit trail entries. Implementations
// must be safe for concurrent use; callers treat Record failures as
// non-fatal.
type ActivityService interface {
	Record(ctx context.Context, activity domain.Activity) error
	Recent(ctx context.Context, limit int64) ([]domain.Activity, error)
}
