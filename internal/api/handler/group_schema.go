package handler

import "time"

type createGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type renameGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type addMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type memberResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

type groupOwnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type groupResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Pinned    bool               `json:"pinned"`
	CreatedBy groupOwnerResponse `json:"created_by"`
	CreatedAt time.Time          `json:"created_at"`
	Members   []memberResponse   `json:"members"`
}

type pinResponse struct {
	Pinned bool `json:"pinned"`
}

type messageResponse struct {
	Message string `json:"message"`
}
