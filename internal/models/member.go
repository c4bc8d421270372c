package models

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Status         string    `json:"status" db:"status"`
	PlanName       string    `json:"plan_name" db:"plan_name"`
	JoinedAt       time.Time `json:"joined_at" db:"joined_at"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
