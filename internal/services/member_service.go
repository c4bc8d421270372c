package services

import (
	"context"
	"time"

	"adamdesk/internal/models"
	"adamdesk/internal/repositories"

	"github.com/google/uuid"
)

type MemberService interface {
	Create(ctx context.Context, organizationID uuid.UUID, member *models.Member) error
	List(ctx context.Context, organizationID uuid.UUID) ([]*models.Member, error)
}

type memberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// Create inserts a member scoped to organizationID. The path organization
// always wins over whatever the payload carried; the organization itself is
// not checked for existence.
func (s *memberService) Create(ctx context.Context, organizationID uuid.UUID, member *models.Member) error {
	if member.FirstName == "" || member.LastName == "" {
		return NewValidationError("first name and last name are required")
	}
	if member.Email == "" {
		return NewValidationError("email is required")
	}

	member.ID = uuid.New()
	member.OrganizationID = organizationID
	if member.Status == "" {
		member.Status = "active"
	}
	if member.PlanName == "" {
		member.PlanName = "Unlimited"
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}

	return s.memberRepo.Create(ctx, member)
}

func (s *memberService) List(ctx context.Context, organizationID uuid.UUID) ([]*models.Member, error) {
	return s.memberRepo.ListByOrganization(ctx, organizationID)
}
