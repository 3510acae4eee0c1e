package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/catalog"
	"github.com/roamio/roamio-api/internal/notify"
	"github.com/roamio/roamio-api/internal/repository/memory"
	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

func bookingFixture(t *testing.T) (*echo.Echo, string) {
	t.Helper()

	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}

	tokens := util.NewTokenManager("test-secret", time.Hour)
	sessions := service.NewSessionService(memory.NewSessionRepo(), memory.NewThemeRepo(), tokens)
	scheduler := notify.NewScheduler(true)
	t.Cleanup(scheduler.Close)

	destinations := service.NewDestinationService(cat)
	bookings := service.NewBookingService(memory.NewBookingRepo(), destinations, scheduler, service.BookingServiceConfig{
		ProcessingDelay:   0,
		NotificationDelay: time.Hour,
	})

	e := echo.New()
	RegisterSessions(e, sessions)
	RegisterBookings(e, sessions, bookings, true)
	RegisterNotifications(e, sessions, scheduler, true)

	rec := doJSON(e, http.MethodPost, "/api/v1/sessions", "", `{"color_scheme":"dark"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 starting session, got %d", rec.Code)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal session response: %v", err)
	}
	return e, body.Token
}

func TestCreateBookingValidation(t *testing.T) {
	e, token := bookingFixture(t)

	// Missing travel date.
	rec := doJSON(e, http.MethodPost, "/api/v1/bookings", token, `{"destination_id":"1","travelers":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing date, got %d: %s", rec.Code, rec.Body.String())
	}

	// Missing destination id.
	rec = doJSON(e, http.MethodPost, "/api/v1/bookings", token, `{"travel_date":"2026-10-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing destination, got %d", rec.Code)
	}
}

func TestCreateBookingUnknownDestination(t *testing.T) {
	e, token := bookingFixture(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/bookings", token,
		`{"destination_id":"999","travel_date":"2026-10-01","travelers":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown destination, got %d", rec.Code)
	}
}

func TestCreateBookingFlow(t *testing.T) {
	e, token := bookingFixture(t)

	// Grant notification permission first, as the client would.
	rec := doJSON(e, http.MethodPost, "/api/v1/me/notifications/permission", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 requesting permission, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/v1/bookings", token,
		`{"destination_id":"2","travel_date":"2026-10-01","travelers":2,"special_requests":"window seat"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 booking, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Booking struct {
			ID              string  `json:"id"`
			DestinationName string  `json:"destination_name"`
			TotalPrice      float64 `json:"total_price"`
		} `json:"booking"`
		Notification string `json:"notification"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal booking response: %v", err)
	}
	if created.Booking.DestinationName != "Kyoto" {
		t.Fatalf("expected Kyoto, got %q", created.Booking.DestinationName)
	}
	if created.Booking.TotalPrice != 1599*2 {
		t.Fatalf("expected total 3198, got %v", created.Booking.TotalPrice)
	}
	if created.Notification != "scheduled" {
		t.Fatalf("expected scheduled notification outcome, got %q", created.Notification)
	}

	// The trip shows up in the session's list.
	rec = doJSON(e, http.MethodGet, "/api/v1/bookings", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing trips, got %d", rec.Code)
	}
	var trips struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &trips); err != nil {
		t.Fatalf("unmarshal trips: %v", err)
	}
	if trips.Count != 1 {
		t.Fatalf("expected one trip, got %d", trips.Count)
	}

	// Detail lookup works; a bad UUID is rejected.
	rec = doJSON(e, http.MethodGet, "/api/v1/bookings/"+created.Booking.ID, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 booking detail, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/api/v1/bookings/not-a-uuid", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad booking id, got %d", rec.Code)
	}
}

func TestBookingDisabledFlag(t *testing.T) {
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}

	tokens := util.NewTokenManager("test-secret", time.Hour)
	sessions := service.NewSessionService(memory.NewSessionRepo(), memory.NewThemeRepo(), tokens)
	scheduler := notify.NewScheduler(true)
	t.Cleanup(scheduler.Close)

	destinations := service.NewDestinationService(cat)
	bookings := service.NewBookingService(memory.NewBookingRepo(), destinations, scheduler, service.BookingServiceConfig{})

	e := echo.New()
	RegisterSessions(e, sessions)
	RegisterBookings(e, sessions, bookings, false)

	rec := doJSON(e, http.MethodPost, "/api/v1/sessions", "", `{}`)
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal session response: %v", err)
	}

	rec = doJSON(e, http.MethodPost, "/api/v1/bookings", body.Token,
		`{"destination_id":"1","travel_date":"2026-10-01"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when booking disabled, got %d", rec.Code)
	}
}
