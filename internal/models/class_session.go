package models

import (
	"time"

	"github.com/google/uuid"
)

type ClassSession struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Title          string    `json:"title" db:"title"`
	CoachName      string    `json:"coach_name" db:"coach_name"`
	StartsAt       time.Time `json:"starts_at" db:"starts_at"`
	Capacity       int       `json:"capacity" db:"capacity"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
