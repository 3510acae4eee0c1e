package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
	enabled  bool
}

func RegisterBookings(e *echo.Echo, sessions *service.SessionService, bookings *service.BookingService, enabled bool) {
	handler := &BookingHandler{bookings: bookings, enabled: enabled}

	group := e.Group("/api/v1/bookings", RequireSession(sessions))
	group.POST("", handler.createBooking)
	group.GET("", handler.listTrips)
	group.GET("/:id", handler.getBooking)
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	if !h.enabled {
		return c.JSON(http.StatusForbidden, util.Error("booking is disabled"))
	}

	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	var req struct {
		DestinationID   string `json:"destination_id"`
		TravelDate      string `json:"travel_date"`
		Travelers       int    `json:"travelers"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.DestinationID) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("destination_id is required"))
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}

	result, err := h.bookings.Create(c.Request().Context(), session.ID, service.BookingInput{
		DestinationID:   strings.TrimSpace(req.DestinationID),
		TravelDate:      req.TravelDate,
		Travelers:       req.Travelers,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("booking failed, please try again"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"booking":      result.Booking,
		"notification": result.Notification,
		"message":      "Booking Confirmed!",
	})
}

func (h *BookingHandler) listTrips(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	trips, err := h.bookings.ListTrips(c.Request().Context(), session.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load trips"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"trips": trips,
		"count": len(trips),
	})
}

func (h *BookingHandler) getBooking(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("booking id must be a valid UUID"))
	}

	booking, err := h.bookings.GetByID(c.Request().Context(), session.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("booking not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load booking"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"booking": booking})
}
