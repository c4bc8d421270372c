package handlers

import (
	"net/http"
	"time"

	"adamdesk/internal/models"
	"adamdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClassSessionHandlers handles class schedule CRUD scoped to the path organization.
type ClassSessionHandlers struct {
	classService services.ClassSessionService
}

func NewClassSessionHandlers(classService services.ClassSessionService) *ClassSessionHandlers {
	return &ClassSessionHandlers{classService: classService}
}

type CreateClassSessionRequest struct {
	Title     string    `json:"title"`
	CoachName string    `json:"coach_name"`
	StartsAt  time.Time `json:"starts_at"`
	Capacity  int       `json:"capacity"`
}

func (h *ClassSessionHandlers) CreateClass(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	var req CreateClassSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	session := &models.ClassSession{
		Title:     req.Title,
		CoachName: req.CoachName,
		StartsAt:  req.StartsAt,
		Capacity:  req.Capacity,
	}
	if err := h.classService.Create(ctx, organizationID, session); err != nil {
		if services.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create class")
	}

	return c.JSON(http.StatusOK, session)
}

func (h *ClassSessionHandlers) ListClasses(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	sessions, err := h.classService.List(ctx, organizationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list classes")
	}
	if sessions == nil {
		sessions = []*models.ClassSession{}
	}

	return c.JSON(http.StatusOK, sessions)
}
