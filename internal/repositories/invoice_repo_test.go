package repositories

import (
	"context"
	"testing"
	"time"

	"adamdesk/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InvoiceRepoTestSuite struct {
	suite.Suite
	mock  pgxmock.PgxPoolIface
	repo  InvoiceRepository
	orgID uuid.UUID
	ctx   context.Context
}

func (suite *InvoiceRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewInvoiceRepo(mock)
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *InvoiceRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestInvoiceRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepoTestSuite))
}

func (suite *InvoiceRepoTestSuite) TestCreate_Success() {
	invoice := &models.Invoice{
		ID:             uuid.New(),
		OrganizationID: suite.orgID,
		MemberID:       uuid.New(),
		Amount:         159.00,
		Status:         "paid",
		DueDate:        time.Now().UTC(),
	}

	suite.mock.ExpectExec("INSERT INTO invoices").
		WithArgs(invoice.ID, invoice.OrganizationID, invoice.MemberID, invoice.Amount, invoice.Status, invoice.DueDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, invoice)
	assert.NoError(suite.T(), err)
}

func (suite *InvoiceRepoTestSuite) TestSumPaidDueSince_ReturnsTotal() {
	since := time.Now().UTC().Add(-30 * 24 * time.Hour)

	suite.mock.ExpectQuery("COALESCE\\(SUM\\(amount\\), 0\\)").
		WithArgs(suite.orgID, since).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(477.50))

	total, err := suite.repo.SumPaidDueSince(suite.ctx, suite.orgID, since)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 477.50, total)
}

func (suite *InvoiceRepoTestSuite) TestSumPaidDueSince_NoRowsDefaultsToZero() {
	since := time.Now().UTC().Add(-30 * 24 * time.Hour)

	// COALESCE keeps the aggregate a single zero row even with no matches.
	suite.mock.ExpectQuery("COALESCE\\(SUM\\(amount\\), 0\\)").
		WithArgs(suite.orgID, since).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	total, err := suite.repo.SumPaidDueSince(suite.ctx, suite.orgID, since)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, total)
}

func (suite *InvoiceRepoTestSuite) TestListByOrganization() {
	due := time.Now().UTC()
	created := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "organization_id", "member_id", "amount", "status", "due_date", "created_at"}).
		AddRow(uuid.New(), suite.orgID, uuid.New(), 159.00, "paid", due, created).
		AddRow(uuid.New(), suite.orgID, uuid.New(), 89.00, "unpaid", due, created)

	suite.mock.ExpectQuery("FROM invoices").
		WithArgs(suite.orgID).
		WillReturnRows(rows)

	invoices, err := suite.repo.ListByOrganization(suite.ctx, suite.orgID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), invoices, 2)
	assert.Equal(suite.T(), 159.00, invoices[0].Amount)
	assert.Equal(suite.T(), "unpaid", invoices[1].Status)
}
