package handlers

import (
	"net/http"

	"adamdesk/internal/common"
	"adamdesk/internal/models"
	"adamdesk/internal/repositories"
	"adamdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthHandlers handles registration, login and the current-user lookup.
type AuthHandlers struct {
	db          repositories.Pool
	userRepo    repositories.UserRepository
	authService services.AuthService
}

func NewAuthHandlers(db repositories.Pool, userRepo repositories.UserRepository, authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{
		db:          db,
		userRepo:    userRepo,
		authService: authService,
	}
}

// RegisterRequest is the signup payload: a new organization plus its owner.
type RegisterRequest struct {
	OrgName  string `json:"org_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries the access token and the id of the organization
// that was created for the caller.
type RegisterResponse struct {
	models.TokenResponse
	OrganizationID uuid.UUID `json:"organization_id"`
}

// Register creates an organization and its owner user in one transaction and
// returns an access token for the new user. Duplicate emails fail with 400;
// concurrent duplicates lose against the unique index and get the same 400.
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.OrgName == "" || req.FullName == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "org_name, full_name, email and password are required")
	}

	if _, err := h.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already used")
	} else if !repositories.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register")
	}

	hashed, err := h.authService.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	tx, err := h.db.Begin(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register")
	}
	defer tx.Rollback(ctx)

	org := &models.Organization{
		ID:       uuid.New(),
		Name:     req.OrgName,
		Timezone: "UTC",
	}
	if err := repositories.NewOrganizationRepo(tx).Create(ctx, org); err != nil {
		if repositories.IsUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, "Organization name already used")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create organization")
	}

	user := &models.User{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashed,
		Role:           "owner",
	}
	if err := repositories.NewUserRepo(tx).Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, "Email already used")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	if err := tx.Commit(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register")
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, RegisterResponse{
		TokenResponse:  *token,
		OrganizationID: org.ID,
	})
}

// LoginRequest is the form-encoded login payload.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Login verifies credentials and returns an access token. The response never
// reveals whether the email or the password was wrong.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	user, err := h.userRepo.GetByEmail(ctx, req.Username)
	if err != nil || !h.authService.VerifyPassword(req.Password, user.HashedPassword) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, token)
}

// Me returns the authenticated user's profile.
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, user)
}
