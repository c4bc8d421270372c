package storage

import (
	"context"
	"fmt"

	"adamdesk/internal/repositories"
)

// Migrate creates the schema if it does not exist. There is no migration
// history; the statements are idempotent.
func Migrate(ctx context.Context, db repositories.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY,
		name VARCHAR(120) NOT NULL UNIQUE,
		timezone VARCHAR(64) NOT NULL DEFAULT 'UTC',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		email VARCHAR(120) NOT NULL UNIQUE,
		full_name VARCHAR(120) NOT NULL,
		hashed_password VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'owner',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS members (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		first_name VARCHAR(80) NOT NULL,
		last_name VARCHAR(80) NOT NULL,
		email VARCHAR(120) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'active',
		plan_name VARCHAR(80) NOT NULL DEFAULT 'Unlimited',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_members_organization_id ON members(organization_id);

	CREATE TABLE IF NOT EXISTS class_sessions (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		title VARCHAR(120) NOT NULL,
		coach_name VARCHAR(120) NOT NULL,
		starts_at TIMESTAMPTZ NOT NULL,
		capacity INTEGER NOT NULL DEFAULT 20,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_class_sessions_organization_id ON class_sessions(organization_id);

	CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		member_id UUID NOT NULL,
		class_session_id UUID NOT NULL,
		attended BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_bookings_organization_id ON bookings(organization_id);

	CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		member_id UUID NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'paid',
		due_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_invoices_organization_id ON invoices(organization_id);

	CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		full_name VARCHAR(120) NOT NULL,
		email VARCHAR(120) NOT NULL,
		source VARCHAR(80) NOT NULL DEFAULT 'web',
		stage VARCHAR(32) NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_leads_organization_id ON leads(organization_id);
	`

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
