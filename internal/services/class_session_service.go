package services

import (
	"context"

	"adamdesk/internal/models"
	"adamdesk/internal/repositories"

	"github.com/google/uuid"
)

type ClassSessionService interface {
	Create(ctx context.Context, organizationID uuid.UUID, session *models.ClassSession) error
	List(ctx context.Context, organizationID uuid.UUID) ([]*models.ClassSession, error)
}

type classSessionService struct {
	classRepo repositories.ClassSessionRepository
}

func NewClassSessionService(classRepo repositories.ClassSessionRepository) ClassSessionService {
	return &classSessionService{classRepo: classRepo}
}

func (s *classSessionService) Create(ctx context.Context, organizationID uuid.UUID, session *models.ClassSession) error {
	if session.Title == "" {
		return NewValidationError("title is required")
	}
	if session.CoachName == "" {
		return NewValidationError("coach name is required")
	}
	if session.StartsAt.IsZero() {
		return NewValidationError("starts_at is required")
	}

	session.ID = uuid.New()
	session.OrganizationID = organizationID
	if session.Capacity == 0 {
		session.Capacity = 20
	}

	return s.classRepo.Create(ctx, session)
}

func (s *classSessionService) List(ctx context.Context, organizationID uuid.UUID) ([]*models.ClassSession, error) {
	return s.classRepo.ListByOrganization(ctx, organizationID)
}
