package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	FullName       string    `json:"full_name" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	Source         string    `json:"source" db:"source"`
	Stage          string    `json:"stage" db:"stage"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
