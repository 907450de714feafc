package ports

import "github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"

// Identity is the validated caller identity extracted from a verified token.
// It is passed explicitly through the call chain instead of living in an
// ambient per-request global.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == domain.RoleAdmin
}
