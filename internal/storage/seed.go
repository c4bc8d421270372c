package storage

import (
	"context"
	"fmt"
	"time"

	"adamdesk/internal/models"
	"adamdesk/internal/repositories"
	"adamdesk/internal/services"

	"github.com/google/uuid"
)

// DemoOrganizationName is the well-known organization the dashboard pages
// render. Seeded once at startup if absent.
const DemoOrganizationName = "AdamDesk Demo Gym"

// SeedDemoData creates the demo organization with an owner account and a
// small data set. Idempotent: if the organization already exists nothing is
// written.
func SeedDemoData(ctx context.Context, db repositories.DB, authSvc services.AuthService) error {
	orgRepo := repositories.NewOrganizationRepo(db)

	if _, err := orgRepo.GetByName(ctx, DemoOrganizationName); err == nil {
		return nil
	} else if !repositories.IsNotFound(err) {
		return fmt.Errorf("failed to look up demo organization: %w", err)
	}

	now := time.Now().UTC()

	org := &models.Organization{
		ID:       uuid.New(),
		Name:     DemoOrganizationName,
		Timezone: "UTC",
	}
	if err := orgRepo.Create(ctx, org); err != nil {
		return fmt.Errorf("failed to create demo organization: %w", err)
	}

	hashed, err := authSvc.HashPassword("demo1234")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	owner := &models.User{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Email:          "owner@adamdesk.app",
		FullName:       "Demo Owner",
		HashedPassword: hashed,
		Role:           "owner",
	}
	if err := repositories.NewUserRepo(db).Create(ctx, owner); err != nil {
		return fmt.Errorf("failed to create demo owner: %w", err)
	}

	memberRepo := repositories.NewMemberRepo(db)
	members := []*models.Member{
		{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			FirstName:      "Alex",
			LastName:       "Stone",
			Email:          "alex@example.com",
			Status:         "active",
			PlanName:       "Unlimited",
			JoinedAt:       now,
		},
		{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			FirstName:      "Riley",
			LastName:       "Chen",
			Email:          "riley@example.com",
			Status:         "active",
			PlanName:       "8x / month",
			JoinedAt:       now,
		},
	}
	for _, member := range members {
		if err := memberRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create demo member: %w", err)
		}
	}

	classRepo := repositories.NewClassSessionRepo(db)
	classes := []*models.ClassSession{
		{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			Title:          "CrossFit WOD",
			CoachName:      "Jamie",
			StartsAt:       now.Add(2 * time.Hour),
			Capacity:       24,
		},
		{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			Title:          "Hyrox Engine",
			CoachName:      "Morgan",
			StartsAt:       now.Add(5 * time.Hour),
			Capacity:       20,
		},
	}
	for _, session := range classes {
		if err := classRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to create demo class: %w", err)
		}
	}

	lead := &models.Lead{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		FullName:       "Taylor Reed",
		Email:          "taylor@lead.com",
		Source:         "instagram",
		Stage:          "new",
	}
	if err := repositories.NewLeadRepo(db).Create(ctx, lead); err != nil {
		return fmt.Errorf("failed to create demo lead: %w", err)
	}

	invoice := &models.Invoice{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		MemberID:       members[0].ID,
		Amount:         159.00,
		Status:         "paid",
		DueDate:        now,
	}
	if err := repositories.NewInvoiceRepo(db).Create(ctx, invoice); err != nil {
		return fmt.Errorf("failed to create demo invoice: %w", err)
	}

	return nil
}
