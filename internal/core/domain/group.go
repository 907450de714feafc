package domain

import (
	"errors"
	"time"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrAlreadyMember  = errors.New("user already in group")
	ErrNotGroupMember = errors.New("user not in group")
)

// GroupMember is the membership join between a group and a user. Name is
// denormalized onto reads so list responses do not fan out per member.
type GroupMember struct {
	UserID   string    `json:"id" bson:"user_id"`
	Name     string    `json:"name" bson:"name"`
	JoinedAt time.Time `json:"joined_at" bson:"joined_at"`
}

// Group is a named set of users sharing expenses. OwnerID is the creator;
// only the owner may mutate the group or its membership.
type Group struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	OwnerID   string        `json:"owner_id"`
	OwnerName string        `json:"owner_name,omitempty"`
	Pinned    bool          `json:"pinned"`
	Members   []GroupMember `json:"members"`
	CreatedAt time.Time     `json:"created_at"`
}

// IsMember reports whether the given user belongs to the group.
func (g *Group) IsMember(userID string) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
