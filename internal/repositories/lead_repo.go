package repositories

import (
	"context"

	"adamdesk/internal/models"

	"github.com/google/uuid"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Lead, error)
	CountByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error)
}

type leadRepo struct {
	db DB
}

func NewLeadRepo(db DB) LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, organization_id, full_name, email, source, stage, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, lead.ID, lead.OrganizationID, lead.FullName, lead.Email, lead.Source, lead.Stage)
	return err
}

func (r *leadRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	lead := &models.Lead{}
	query := `
		SELECT id, organization_id, full_name, email, source, stage, created_at
		FROM leads
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&lead.ID, &lead.OrganizationID, &lead.FullName, &lead.Email, &lead.Source, &lead.Stage, &lead.CreatedAt)
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Lead, error) {
	query := `
		SELECT id, organization_id, full_name, email, source, stage, created_at
		FROM leads
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		if err := rows.Scan(&lead.ID, &lead.OrganizationID, &lead.FullName, &lead.Email, &lead.Source, &lead.Stage, &lead.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepo) CountByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM leads WHERE organization_id = $1`
	err := r.db.QueryRow(ctx, query, organizationID).Scan(&count)
	return count, err
}
