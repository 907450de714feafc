package handler

import "time"

type expenseRequest struct {
	Title       string    `json:"title"        validate:"required,max=100"`
	AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
	Category    string    `json:"category"     validate:"max=50"`
	Description string    `json:"description"  validate:"max=250"`
	Date        time.Time `json:"date"`
	GroupID     string    `json:"group_id"`
}

type expenseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
	GroupID     string    `json:"group_id,omitempty"`
}
