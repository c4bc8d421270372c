package web

import (
	"time"

	"adamdesk/internal/models"
	"adamdesk/internal/storage"

	"github.com/google/uuid"
)

// fallbackContext returns the fixed placeholder view model used when the
// store cannot be reached. Ids are static so repeated renders are stable.
func fallbackContext(activePage string) *PageContext {
	now := time.Now().UTC()
	orgID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	memberID := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	members := []*models.Member{
		{
			ID:             memberID,
			OrganizationID: orgID,
			FirstName:      "Alex",
			LastName:       "Stone",
			Email:          "alex@example.com",
			Status:         "active",
			PlanName:       "Unlimited",
			JoinedAt:       now,
		},
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			OrganizationID: orgID,
			FirstName:      "Riley",
			LastName:       "Chen",
			Email:          "riley@example.com",
			Status:         "active",
			PlanName:       "8x / month",
			JoinedAt:       now,
		},
	}

	classes := []*models.ClassSession{
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			OrganizationID: orgID,
			Title:          "CrossFit WOD",
			CoachName:      "Jamie",
			StartsAt:       now.Add(2 * time.Hour),
			Capacity:       24,
		},
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000005"),
			OrganizationID: orgID,
			Title:          "Hyrox Engine",
			CoachName:      "Morgan",
			StartsAt:       now.Add(5 * time.Hour),
			Capacity:       20,
		},
	}

	leads := []*models.Lead{
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000006"),
			OrganizationID: orgID,
			FullName:       "Taylor Reed",
			Email:          "taylor@lead.com",
			Source:         "instagram",
			Stage:          "new",
		},
	}

	invoices := []*models.Invoice{
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000007"),
			OrganizationID: orgID,
			MemberID:       memberID,
			Amount:         159.00,
			Status:         "paid",
			DueDate:        now,
		},
	}

	return &PageContext{
		AppName:        "AdamDesk",
		ActivePage:     activePage,
		RuntimeWarning: "Database unavailable. Showing placeholder data.",
		Org: &models.Organization{
			ID:       orgID,
			Name:     storage.DemoOrganizationName,
			Timezone: "UTC",
		},
		Members:        members,
		Classes:        classes,
		Leads:          leads,
		Invoices:       invoices,
		MonthlyRevenue: 159.00,
	}
}
