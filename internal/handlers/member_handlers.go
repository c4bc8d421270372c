package handlers

import (
	"net/http"
	"time"

	"adamdesk/internal/models"
	"adamdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MemberHandlers handles member CRUD scoped to the path organization.
type MemberHandlers struct {
	memberService services.MemberService
}

func NewMemberHandlers(memberService services.MemberService) *MemberHandlers {
	return &MemberHandlers{memberService: memberService}
}

// CreateMemberRequest is the member creation payload. Any organization_id in
// the body is ignored; the path parameter wins.
type CreateMemberRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PlanName  string `json:"plan_name"`
}

func (h *MemberHandlers) CreateMember(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	var req CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	member := &models.Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PlanName:  req.PlanName,
		JoinedAt:  time.Now().UTC(),
	}
	if err := h.memberService.Create(ctx, organizationID, member); err != nil {
		if services.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create member")
	}

	return c.JSON(http.StatusOK, member)
}

func (h *MemberHandlers) ListMembers(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	members, err := h.memberService.List(ctx, organizationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list members")
	}
	if members == nil {
		members = []*models.Member{}
	}

	return c.JSON(http.StatusOK, members)
}
