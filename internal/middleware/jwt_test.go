package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adamdesk/internal/common"
	"adamdesk/internal/repositories"
	"adamdesk/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestSetup(t *testing.T) (pgxmock.PgxPoolIface, services.AuthService, echo.MiddlewareFunc) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mockPool.ExpectationsWereMet())
		mockPool.Close()
	})

	authSvc := services.NewAuthService("test-secret", time.Hour)
	return mockPool, authSvc, JWTMiddleware(authSvc, repositories.NewUserRepo(mockPool))
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var inner echo.Context
	err := mw(func(c echo.Context) error {
		inner = c
		return c.NoContent(http.StatusOK)
	})(c)
	return inner, err
}

func TestJWTMiddleware_Success(t *testing.T) {
	mockPool, authSvc, mw := newJWTTestSetup(t)

	userID := uuid.New()
	orgID := uuid.New()
	token, err := authSvc.GenerateToken(userID)
	require.NoError(t, err)

	mockPool.ExpectQuery("FROM users").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "email", "full_name", "hashed_password", "role", "created_at"}).
			AddRow(userID, orgID, "owner@example.com", "Sam Owner", "digest", "owner", time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	inner, err := invoke(mw, req)
	require.NoError(t, err)

	gotUser, ok := common.GetUserIDFromContext(inner.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, userID, gotUser)

	gotOrg, ok := common.GetOrganizationIDFromContext(inner.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, orgID, gotOrg)
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	_, _, mw := newJWTTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := invoke(mw, req)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTMiddleware_NotBearer(t *testing.T) {
	_, _, mw := newJWTTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	_, err := invoke(mw, req)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	_, _, mw := newJWTTestSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	_, err := invoke(mw, req)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTMiddleware_UnknownUser(t *testing.T) {
	mockPool, authSvc, mw := newJWTTestSetup(t)

	userID := uuid.New()
	token, err := authSvc.GenerateToken(userID)
	require.NoError(t, err)

	mockPool.ExpectQuery("FROM users").
		WithArgs(userID).
		WillReturnError(pgx.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	_, err = invoke(mw, req)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
