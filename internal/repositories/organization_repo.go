package repositories

import (
	"context"

	"adamdesk/internal/models"

	"github.com/google/uuid"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByName(ctx context.Context, name string) (*models.Organization, error)
}

type organizationRepo struct {
	db DB
}

func NewOrganizationRepo(db DB) OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (id, name, timezone, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(ctx, query, org.ID, org.Name, org.Timezone)
	return err
}

func (r *organizationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	org := &models.Organization{}
	query := `
		SELECT id, name, timezone, created_at
		FROM organizations
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&org.ID, &org.Name, &org.Timezone, &org.CreatedAt)
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (r *organizationRepo) GetByName(ctx context.Context, name string) (*models.Organization, error) {
	org := &models.Organization{}
	query := `
		SELECT id, name, timezone, created_at
		FROM organizations
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&org.ID, &org.Name, &org.Timezone, &org.CreatedAt)
	if err != nil {
		return nil, err
	}
	return org, nil
}
