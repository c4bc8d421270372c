package repositories

import (
	"context"
	"time"

	"adamdesk/internal/models"

	"github.com/google/uuid"
)

type ClassSessionRepository interface {
	Create(ctx context.Context, session *models.ClassSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClassSession, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.ClassSession, error)
	CountUpcoming(ctx context.Context, organizationID uuid.UUID, since time.Time) (int, error)
}

type classSessionRepo struct {
	db DB
}

func NewClassSessionRepo(db DB) ClassSessionRepository {
	return &classSessionRepo{db: db}
}

func (r *classSessionRepo) Create(ctx context.Context, session *models.ClassSession) error {
	query := `
		INSERT INTO class_sessions (id, organization_id, title, coach_name, starts_at, capacity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, session.ID, session.OrganizationID, session.Title, session.CoachName, session.StartsAt, session.Capacity)
	return err
}

func (r *classSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ClassSession, error) {
	session := &models.ClassSession{}
	query := `
		SELECT id, organization_id, title, coach_name, starts_at, capacity, created_at
		FROM class_sessions
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&session.ID, &session.OrganizationID, &session.Title, &session.CoachName, &session.StartsAt, &session.Capacity, &session.CreatedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *classSessionRepo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.ClassSession, error) {
	query := `
		SELECT id, organization_id, title, coach_name, starts_at, capacity, created_at
		FROM class_sessions
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.ClassSession
	for rows.Next() {
		session := &models.ClassSession{}
		if err := rows.Scan(&session.ID, &session.OrganizationID, &session.Title, &session.CoachName, &session.StartsAt, &session.Capacity, &session.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *classSessionRepo) CountUpcoming(ctx context.Context, organizationID uuid.UUID, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM class_sessions WHERE organization_id = $1 AND starts_at >= $2`
	err := r.db.QueryRow(ctx, query, organizationID, since).Scan(&count)
	return count, err
}
