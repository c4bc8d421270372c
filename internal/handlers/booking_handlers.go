package handlers

import (
	"net/http"

	"adamdesk/internal/models"
	"adamdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingHandlers handles booking creation scoped to the path organization.
type BookingHandlers struct {
	bookingService services.BookingService
}

func NewBookingHandlers(bookingService services.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingService: bookingService}
}

// CreateBooking links a member to a class session. Both ids come from query
// parameters and are inserted as given; cross-organization references are
// not rejected here.
func (h *BookingHandlers) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	memberID, err := uuid.Parse(c.QueryParam("member_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid member ID format")
	}

	classSessionID, err := uuid.Parse(c.QueryParam("class_session_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid class session ID format")
	}

	booking, err := h.bookingService.Create(ctx, organizationID, memberID, classSessionID)
	if err != nil {
		if services.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create booking")
	}

	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandlers) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization ID format")
	}

	bookings, err := h.bookingService.List(ctx, organizationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list bookings")
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}

	return c.JSON(http.StatusOK, bookings)
}
