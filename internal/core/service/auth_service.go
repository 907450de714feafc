package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/api/metrics"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/token"
)

// ActivityRecorder enqueues audit records for asynchronous persistence.
type ActivityRecorder interface {
	Enqueue(activity domain.Activity)
}

// AuthService implements registration, login and the current-user lookup.
type AuthService struct {
	repo     ports.UserRepository
	issuer   *token.Issuer
	recorder ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, recorder ActivityRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, recorder: recorder, log: log}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.record(created.ID, domain.ActivityRegister, "user", created.ID)
	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	return created, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password collapse into the same ErrInvalidCredentials so the
// response carries no account enumeration signal.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrValidation
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(user.ID, domain.ActivityLogin, "user", user.ID)

	return signed, user, nil
}

// CurrentUser re-fetches the user behind a validated subject id. Claims may
// outlive a profile edit inside the token window; the store is authoritative.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) record(actorID, action, entity, entityID string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(domain.Activity{
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	})
}
