package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	MemberID       uuid.UUID `json:"member_id" db:"member_id"`
	Amount         float64   `json:"amount" db:"amount"`
	Status         string    `json:"status" db:"status"`
	DueDate        time.Time `json:"due_date" db:"due_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
