package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

// GroupService implements group CRUD and membership mutation. Every mutating
// operation checks that the caller owns the group (admins bypass the check),
// including member add/remove and pin.
type GroupService struct {
	groups   ports.GroupRepository
	users    ports.UserRepository
	recorder ActivityRecorder
	log      zerolog.Logger
}

func NewGroupService(groups ports.GroupRepository, users ports.UserRepository, recorder ActivityRecorder, log zerolog.Logger) *GroupService {
	return &GroupService{groups: groups, users: users, recorder: recorder, log: log}
}

func (s *GroupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.groups.List(ctx)
}

func (s *GroupService) GetGroup(ctx context.Context, id string) (*domain.Group, error) {
	return s.groups.FindByID(ctx, id)
}

// CreateGroup creates a group owned by the caller, who becomes its first member.
func (s *GroupService) CreateGroup(ctx context.Context, ident ports.Identity, name string) (*domain.Group, error) {
	if name == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	group := &domain.Group{
		Name:      name,
		OwnerID:   ident.UserID,
		OwnerName: ident.Name,
		Members: []domain.GroupMember{
			{UserID: ident.UserID, Name: ident.Name, JoinedAt: now},
		},
		CreatedAt: now,
	}

	created, err := s.groups.Create(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	s.record(ident.UserID, domain.ActivityGroupCreated, "group", created.ID)
	s.log.Info().Str("group_id", created.ID).Str("owner_id", ident.UserID).Msg("group created")

	return created, nil
}

func (s *GroupService) RenameGroup(ctx context.Context, ident ports.Identity, id, name string) error {
	if name == "" {
		return domain.ErrValidation
	}
	if err := s.requireOwner(ctx, ident, id); err != nil {
		return err
	}
	return s.groups.Rename(ctx, id, name)
}

func (s *GroupService) DeleteGroup(ctx context.Context, ident ports.Identity, id string) error {
	if err := s.requireOwner(ctx, ident, id); err != nil {
		return err
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ident.UserID, domain.ActivityGroupDeleted, "group", id)
	return nil
}

// AddMember looks up the invitee by email and appends them to the group.
func (s *GroupService) AddMember(ctx context.Context, ident ports.Identity, groupID, email string) error {
	if email == "" {
		return domain.ErrValidation
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !ident.IsAdmin() && group.OwnerID != ident.UserID {
		return domain.ErrForbidden
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if group.IsMember(user.ID) {
		return domain.ErrAlreadyMember
	}

	member := domain.GroupMember{
		UserID:   user.ID,
		Name:     user.Name,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.groups.AddMember(ctx, groupID, member); err != nil {
		return err
	}

	s.record(ident.UserID, domain.ActivityMemberAdded, "group", groupID)
	return nil
}

func (s *GroupService) RemoveMember(ctx context.Context, ident ports.Identity, groupID, userID string) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !ident.IsAdmin() && group.OwnerID != ident.UserID {
		return domain.ErrForbidden
	}
	if !group.IsMember(userID) {
		return domain.ErrNotGroupMember
	}

	if err := s.groups.RemoveMember(ctx, groupID, userID); err != nil {
		return err
	}

	s.record(ident.UserID, domain.ActivityMemberRemoved, "group", groupID)
	return nil
}

// TogglePin flips the pinned flag and returns the new value.
func (s *GroupService) TogglePin(ctx context.Context, ident ports.Identity, groupID string) (bool, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return false, err
	}
	if !ident.IsAdmin() && group.OwnerID != ident.UserID {
		return false, domain.ErrForbidden
	}

	pinned := !group.Pinned
	if err := s.groups.SetPinned(ctx, groupID, pinned); err != nil {
		return false, err
	}
	return pinned, nil
}

func (s *GroupService) requireOwner(ctx context.Context, ident ports.Identity, groupID string) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !ident.IsAdmin() && group.OwnerID != ident.UserID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *GroupService) record(actorID, action, entity, entityID string) {
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
