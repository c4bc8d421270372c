package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adamdesk/internal/repositories"
	"adamdesk/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type WebTestSuite struct {
	suite.Suite
	mockPool pgxmock.PgxPoolIface
	echo     *echo.Echo
}

func (suite *WebTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mockPool = pool

	renderer, err := NewRenderer(
		repositories.NewOrganizationRepo(pool),
		repositories.NewMemberRepo(pool),
		repositories.NewClassSessionRepo(pool),
		repositories.NewLeadRepo(pool),
		repositories.NewInvoiceRepo(pool),
		zap.NewNop(),
	)
	require.NoError(suite.T(), err)

	suite.echo = echo.New()
	NewHandlers(renderer).Register(suite.echo)
}

func (suite *WebTestSuite) TearDownTest() {
	require.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
	suite.mockPool.Close()
}

func TestWebTestSuite(t *testing.T) {
	suite.Run(t, new(WebTestSuite))
}

func (suite *WebTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

// expectLiveData queues the full page load: the demo organization lookup
// followed by the four collection queries.
func (suite *WebTestSuite) expectLiveData(orgID uuid.UUID) {
	now := time.Now()

	suite.mockPool.ExpectQuery("FROM organizations").
		WithArgs(storage.DemoOrganizationName).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "timezone", "created_at"}).
			AddRow(orgID, storage.DemoOrganizationName, "UTC", now))

	suite.mockPool.ExpectQuery("FROM members").
		WithArgs(orgID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "first_name", "last_name", "email", "status", "plan_name", "joined_at", "created_at"}).
			AddRow(uuid.New(), orgID, "Alex", "Stone", "alex@example.com", "active", "Unlimited", now, now))

	suite.mockPool.ExpectQuery("FROM class_sessions").
		WithArgs(orgID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "title", "coach_name", "starts_at", "capacity", "created_at"}).
			AddRow(uuid.New(), orgID, "CrossFit WOD", "Jamie", now.Add(2*time.Hour), 24, now))

	suite.mockPool.ExpectQuery("FROM leads").
		WithArgs(orgID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "full_name", "email", "source", "stage", "created_at"}).
			AddRow(uuid.New(), orgID, "Taylor Reed", "taylor@example.com", "instagram", "new", now))

	suite.mockPool.ExpectQuery("FROM invoices").
		WithArgs(orgID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "member_id", "amount", "status", "due_date", "created_at"}).
			AddRow(uuid.New(), orgID, uuid.New(), 159.0, "paid", now, now))
}

func (suite *WebTestSuite) TestHomePage_Live() {
	suite.expectLiveData(uuid.New())

	rec := suite.get("/")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "AdamDesk")
	suite.Contains(rec.Body.String(), storage.DemoOrganizationName)
	suite.NotContains(rec.Body.String(), "Database unavailable")
}

func (suite *WebTestSuite) TestHomePage_Degraded() {
	suite.mockPool.ExpectQuery("FROM organizations").
		WithArgs(storage.DemoOrganizationName).
		WillReturnError(errors.New("connection refused"))

	rec := suite.get("/")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "AdamDesk")
	suite.Contains(rec.Body.String(), "Database unavailable")
	// Placeholder data still fills the page.
	suite.Contains(rec.Body.String(), storage.DemoOrganizationName)
}

func (suite *WebTestSuite) TestHomePage_NoDemoOrganization() {
	suite.mockPool.ExpectQuery("FROM organizations").
		WithArgs(storage.DemoOrganizationName).
		WillReturnError(pgx.ErrNoRows)

	rec := suite.get("/")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "AdamDesk")
	// A missing demo organization is empty, not degraded.
	suite.NotContains(rec.Body.String(), "Database unavailable")
}

func (suite *WebTestSuite) TestMembersPage() {
	suite.expectLiveData(uuid.New())

	rec := suite.get("/members")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "All Members")
	suite.Contains(rec.Body.String(), "Alex")
}

func (suite *WebTestSuite) TestClassesPage() {
	suite.expectLiveData(uuid.New())

	rec := suite.get("/classes")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Class Schedule")
	suite.Contains(rec.Body.String(), "CrossFit WOD")
}

func (suite *WebTestSuite) TestLeadsPage() {
	suite.expectLiveData(uuid.New())

	rec := suite.get("/leads")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Lead Pipeline")
	suite.Contains(rec.Body.String(), "Taylor Reed")
}

func (suite *WebTestSuite) TestBillingPage() {
	suite.expectLiveData(uuid.New())

	rec := suite.get("/billing")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Billing &amp; Invoices")
}

func (suite *WebTestSuite) TestReportsPage() {
	suite.expectLiveData(uuid.New())

	rec := suite.get("/reports")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Revenue Snapshot")
	suite.Contains(rec.Body.String(), "159")
}

func (suite *WebTestSuite) TestEveryPageRendersDegraded() {
	for _, path := range []string{"/", "/members", "/classes", "/leads", "/billing", "/reports"} {
		suite.mockPool.ExpectQuery("FROM organizations").
			WithArgs(storage.DemoOrganizationName).
			WillReturnError(errors.New("connection refused"))

		rec := suite.get(path)
		suite.Equal(http.StatusOK, rec.Code, path)
		suite.Contains(rec.Body.String(), "Database unavailable", path)
	}
}
