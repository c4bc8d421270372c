package repositories

import (
	"context"

	"adamdesk/internal/models"

	"github.com/google/uuid"
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Member, error)
	CountByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error)
}

type memberRepo struct {
	db DB
}

func NewMemberRepo(db DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (id, organization_id, first_name, last_name, email, status, plan_name, joined_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(ctx, query, member.ID, member.OrganizationID, member.FirstName, member.LastName, member.Email, member.Status, member.PlanName, member.JoinedAt)
	return err
}

func (r *memberRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	member := &models.Member{}
	query := `
		SELECT id, organization_id, first_name, last_name, email, status, plan_name, joined_at, created_at
		FROM members
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&member.ID, &member.OrganizationID, &member.FirstName, &member.LastName, &member.Email, &member.Status, &member.PlanName, &member.JoinedAt, &member.CreatedAt)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *memberRepo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Member, error) {
	query := `
		SELECT id, organization_id, first_name, last_name, email, status, plan_name, joined_at, created_at
		FROM members
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member := &models.Member{}
		if err := rows.Scan(&member.ID, &member.OrganizationID, &member.FirstName, &member.LastName, &member.Email, &member.Status, &member.PlanName, &member.JoinedAt, &member.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (r *memberRepo) CountByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM members WHERE organization_id = $1`
	err := r.db.QueryRow(ctx, query, organizationID).Scan(&count)
	return count, err
}
