package repositories

import (
	"context"
	"time"

	"adamdesk/internal/models"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Invoice, error)
	SumPaidDueSince(ctx context.Context, organizationID uuid.UUID, since time.Time) (float64, error)
}

type invoiceRepo struct {
	db DB
}

func NewInvoiceRepo(db DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, organization_id, member_id, amount, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, invoice.ID, invoice.OrganizationID, invoice.MemberID, invoice.Amount, invoice.Status, invoice.DueDate)
	return err
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `
		SELECT id, organization_id, member_id, amount, status, due_date, created_at
		FROM invoices
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&invoice.ID, &invoice.OrganizationID, &invoice.MemberID, &invoice.Amount, &invoice.Status, &invoice.DueDate, &invoice.CreatedAt)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*models.Invoice, error) {
	query := `
		SELECT id, organization_id, member_id, amount, status, due_date, created_at
		FROM invoices
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		if err := rows.Scan(&invoice.ID, &invoice.OrganizationID, &invoice.MemberID, &invoice.Amount, &invoice.Status, &invoice.DueDate, &invoice.CreatedAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

// SumPaidDueSince totals paid invoices whose due date falls at or after
// since. The window bound is inclusive.
func (r *invoiceRepo) SumPaidDueSince(ctx context.Context, organizationID uuid.UUID, since time.Time) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM invoices
		WHERE organization_id = $1 AND status = 'paid' AND due_date >= $2
	`
	err := r.db.QueryRow(ctx, query, organizationID, since).Scan(&total)
	return total, err
}
