package handlers

import (
	"context"
	"net/http"

	"adamdesk/internal/analytics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DashboardService is the slice of the analytics service this handler needs.
type DashboardService interface {
	Dashboard(ctx context.Context, organizationID uuid.UUID) (*analytics.DashboardSnapshot, error)
}

// DashboardHandlers serves the per-organization summary counts.
type DashboardHandlers struct {
	analyticsService DashboardService
}

func NewDashboardHandlers(analyticsService DashboardService) *DashboardHandlers {
	return &DashboardHandlers{analyticsService: analyticsService}
}

func (h *DashboardHandlers) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	snapshot, err := h.analyticsService.Dashboard(ctx, organizationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute dashboard")
	}

	return c.JSON(http.StatusOK, snapshot)
}
