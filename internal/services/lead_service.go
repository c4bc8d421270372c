package services

import (
	"context"

	"adamdesk/internal/models"
	"adamdesk/internal/repositories"

	"github.com/google/uuid"
)

type LeadService interface {
	Create(ctx context.Context, organizationID uuid.UUID, lead *models.Lead) error
	List(ctx context.Context, organizationID uuid.UUID) ([]*models.Lead, error)
}

type leadService struct {
	leadRepo repositories.LeadRepository
}

func NewLeadService(leadRepo repositories.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

func (s *leadService) Create(ctx context.Context, organizationID uuid.UUID, lead *models.Lead) error {
	if lead.FullName == "" {
		return NewValidationError("full name is required")
	}
	if lead.Email == "" {
		return NewValidationError("email is required")
	}

	lead.ID = uuid.New()
	lead.OrganizationID = organizationID
	if lead.Source == "" {
		lead.Source = "web"
	}
	if lead.Stage == "" {
		lead.Stage = "new"
	}

	return s.leadRepo.Create(ctx, lead)
}

func (s *leadService) List(ctx context.Context, organizationID uuid.UUID) ([]*models.Lead, error) {
	return s.leadRepo.ListByOrganization(ctx, organizationID)
}
