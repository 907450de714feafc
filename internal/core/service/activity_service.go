package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists audit records.
// It sits at the consuming end of the queue dispatcher.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Record(ctx context.Context, activity domain.Activity) error {
	if activity.ActorID == "" || activity.Action == "" {
		return domain.ErrValidation
	}

	if err := s.repo.Insert(ctx, &activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("actor_id", activity.ActorID).
		Str("action", activity.Action).
		Str("entity", activity.Entity).
		Msg("activity recorded")

	return nil
}

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

func (s *activityService) Recent(ctx context.Context, limit int64) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
