package services

import (
	"context"

	"adamdesk/internal/models"
	"adamdesk/internal/repositories"

	"github.com/google/uuid"
)

type BookingService interface {
	Create(ctx context.Context, organizationID, memberID, classSessionID uuid.UUID) (*models.Booking, error)
	List(ctx context.Context, organizationID uuid.UUID) ([]*models.Booking, error)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

// Create inserts a booking unconditionally. Neither the member nor the class
// session is checked for existence or organization membership; the unique
// arbiter here is nothing at all. Known gap carried over from the product's
// current behavior.
func (s *bookingService) Create(ctx context.Context, organizationID, memberID, classSessionID uuid.UUID) (*models.Booking, error) {
	if memberID == uuid.Nil || classSessionID == uuid.Nil {
		return nil, NewValidationError("member_id and class_session_id are required")
	}

	booking := &models.Booking{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		MemberID:       memberID,
		ClassSessionID: classSessionID,
		Attended:       false,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, organizationID uuid.UUID) ([]*models.Booking, error) {
	return s.bookingRepo.ListByOrganization(ctx, organizationID)
}
