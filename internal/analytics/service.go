package analytics

import (
	"context"
	"time"

	"adamdesk/internal/repositories"

	"github.com/google/uuid"
)

// revenueWindow is the trailing window for mrr_30d.
const revenueWindow = 30 * 24 * time.Hour

// DashboardSnapshot holds the per-organization summary counts.
type DashboardSnapshot struct {
	Members         int     `json:"members"`
	Leads           int     `json:"leads"`
	UpcomingClasses int     `json:"upcoming_classes"`
	MRR30d          float64 `json:"mrr_30d"`
}

// Service computes read-side dashboard aggregates. Stateless; depends only
// on the current store contents and the clock.
type Service struct {
	memberRepo  repositories.MemberRepository
	leadRepo    repositories.LeadRepository
	classRepo   repositories.ClassSessionRepository
	invoiceRepo repositories.InvoiceRepository

	now func() time.Time
}

func NewService(
	memberRepo repositories.MemberRepository,
	leadRepo repositories.LeadRepository,
	classRepo repositories.ClassSessionRepository,
	invoiceRepo repositories.InvoiceRepository,
) *Service {
	return &Service{
		memberRepo:  memberRepo,
		leadRepo:    leadRepo,
		classRepo:   classRepo,
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// Dashboard returns the summary for one organization. An unknown
// organization id yields all-zero counts, not an error.
func (s *Service) Dashboard(ctx context.Context, organizationID uuid.UUID) (*DashboardSnapshot, error) {
	now := s.now().UTC()

	members, err := s.memberRepo.CountByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	leads, err := s.leadRepo.CountByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.classRepo.CountUpcoming(ctx, organizationID, now)
	if err != nil {
		return nil, err
	}

	// Inclusive lower bound: an invoice due exactly 30 days ago counts.
	mrr, err := s.invoiceRepo.SumPaidDueSince(ctx, organizationID, now.Add(-revenueWindow))
	if err != nil {
		return nil, err
	}

	return &DashboardSnapshot{
		Members:         members,
		Leads:           leads,
		UpcomingClasses: upcoming,
		MRR30d:          mrr,
	}, nil
}
