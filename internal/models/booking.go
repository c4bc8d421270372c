package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	MemberID       uuid.UUID `json:"member_id" db:"member_id"`
	ClassSessionID uuid.UUID `json:"class_session_id" db:"class_session_id"`
	Attended       bool      `json:"attended" db:"attended"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
