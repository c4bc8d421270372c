package handlers

import (
	"net/http"

	"adamdesk/internal/models"
	"adamdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LeadHandlers handles lead pipeline CRUD scoped to the path organization.
type LeadHandlers struct {
	leadService services.LeadService
}

func NewLeadHandlers(leadService services.LeadService) *LeadHandlers {
	return &LeadHandlers{leadService: leadService}
}

type CreateLeadRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Source   string `json:"source"`
}

func (h *LeadHandlers) CreateLead(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	var req CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	lead := &models.Lead{
		FullName: req.FullName,
		Email:    req.Email,
		Source:   req.Source,
	}
	if err := h.leadService.Create(ctx, organizationID, lead); err != nil {
		if services.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create lead")
	}

	return c.JSON(http.StatusOK, lead)
}

func (h *LeadHandlers) ListLeads(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	leads, err := h.leadService.List(ctx, organizationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list leads")
	}
	if leads == nil {
		leads = []*models.Lead{}
	}

	return c.JSON(http.StatusOK, leads)
}
