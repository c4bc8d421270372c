package repositories

import (
	"context"

	"adamdesk/internal/models"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Booking, error)
}

type bookingRepo struct {
	db DB
}

func NewBookingRepo(db DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, organization_id, member_id, class_session_id, attended, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, booking.ID, booking.OrganizationID, booking.MemberID, booking.ClassSessionID, booking.Attended)
	return err
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `
		SELECT id, organization_id, member_id, class_session_id, attended, created_at
		FROM bookings
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&booking.ID, &booking.OrganizationID, &booking.MemberID, &booking.ClassSessionID, &booking.Attended, &booking.CreatedAt)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Booking, error) {
	query := `
		SELECT id, organization_id, member_id, class_session_id, attended, created_at
		FROM bookings
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking := &models.Booking{}
		if err := rows.Scan(&booking.ID, &booking.OrganizationID, &booking.MemberID, &booking.ClassSessionID, &booking.Attended, &booking.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
