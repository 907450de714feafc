package domain

import "time"

// Activity actions recorded by the audit trail.
const (
	ActivityLogin         = "login"
	ActivityRegister      = "register"
	ActivityGroupCreated  = "group_created"
	ActivityGroupDeleted  = "group_deleted"
	ActivityMemberAdded   = "member_added"
	ActivityMemberRemoved = "member_removed"
	ActivityExpenseAdded  = "expense_added"
)

// Activity is an append-only audit record of a user-visible action.
type Activity struct {
	ActorID   string
	Action    string
	Entity    string
	EntityID  string
	Timestamp time.Time
}
