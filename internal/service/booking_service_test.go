package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/catalog"
	"github.com/roamio/roamio-api/internal/notify"
	"github.com/roamio/roamio-api/internal/repository/memory"
)

func newBookingFixture(t *testing.T, allowNotifications bool) (*BookingService, *notify.Scheduler, uuid.UUID) {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}

	scheduler := notify.NewScheduler(allowNotifications)
	t.Cleanup(scheduler.Close)

	svc := NewBookingService(
		memory.NewBookingRepo(),
		NewDestinationService(cat),
		scheduler,
		BookingServiceConfig{ProcessingDelay: 0, NotificationDelay: time.Hour},
	)
	return svc, scheduler, uuid.New()
}

func TestBookingCreateRequiresDate(t *testing.T) {
	ctx := context.Background()
	svc, _, sessionID := newBookingFixture(t, true)

	_, err := svc.Create(ctx, sessionID, BookingInput{
		DestinationID: "1",
		TravelDate:    "   ",
		Travelers:     2,
	})
	if !errors.Is(err, ErrBookingValidation) {
		t.Fatalf("expected ErrBookingValidation for missing date, got %v", err)
	}

	// Validation failures must not create a booking.
	trips, err := svc.ListTrips(ctx, sessionID)
	if err != nil {
		t.Fatalf("ListTrips returned error: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no trips after failed validation, got %d", len(trips))
	}
}

func TestBookingCreateRequiresTravelers(t *testing.T) {
	ctx := context.Background()
	svc, _, sessionID := newBookingFixture(t, true)

	_, err := svc.Create(ctx, sessionID, BookingInput{
		DestinationID: "1",
		TravelDate:    "2026-10-01",
		Travelers:     0,
	})
	if !errors.Is(err, ErrBookingValidation) {
		t.Fatalf("expected ErrBookingValidation for zero travelers, got %v", err)
	}
}

func TestBookingCreateUnknownDestination(t *testing.T) {
	ctx := context.Background()
	svc, _, sessionID := newBookingFixture(t, true)

	_, err := svc.Create(ctx, sessionID, BookingInput{
		DestinationID: "999",
		TravelDate:    "2026-10-01",
		Travelers:     1,
	})
	if !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestBookingCreateConfirmsAndSchedulesReminder(t *testing.T) {
	ctx := context.Background()
	svc, scheduler, sessionID := newBookingFixture(t, true)

	if !scheduler.RequestPermission(sessionID) {
		t.Fatal("expected permission grant")
	}

	result, err := svc.Create(ctx, sessionID, BookingInput{
		DestinationID: "3",
		TravelDate:    "2026-10-01",
		Travelers:     2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	booking := result.Booking
	if booking.DestinationName != "Bali" {
		t.Fatalf("expected Bali, got %q", booking.DestinationName)
	}
	if booking.TotalPrice != 899*2 {
		t.Fatalf("expected total 1798, got %v", booking.TotalPrice)
	}
	if booking.Status != "confirmed" {
		t.Fatalf("expected confirmed status, got %q", booking.Status)
	}
	if result.Notification != NotificationScheduled {
		t.Fatalf("expected scheduled notification outcome, got %q", result.Notification)
	}
	if scheduler.PendingCount() != 1 {
		t.Fatalf("expected one pending notification, got %d", scheduler.PendingCount())
	}

	found, err := svc.GetByID(ctx, sessionID, booking.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if !strings.Contains(found.DestinationName, "Bali") {
		t.Fatalf("stored booking lost its destination: %+v", found)
	}
}

func TestBookingConfirmsDespitePermissionDenial(t *testing.T) {
	ctx := context.Background()
	svc, scheduler, sessionID := newBookingFixture(t, false)

	// The platform refuses the permission request.
	if scheduler.RequestPermission(sessionID) {
		t.Fatal("expected permission denial")
	}

	result, err := svc.Create(ctx, sessionID, BookingInput{
		DestinationID: "1",
		TravelDate:    "2026-10-01",
		Travelers:     1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if result.Notification != NotificationPermissionDenied {
		t.Fatalf("expected permission_denied outcome, got %q", result.Notification)
	}

	// The booking itself still went through.
	trips, err := svc.ListTrips(ctx, sessionID)
	if err != nil {
		t.Fatalf("ListTrips returned error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("expected one trip, got %d", len(trips))
	}
}

func TestBookingGetByIDIsSessionScoped(t *testing.T) {
	ctx := context.Background()
	svc, _, sessionID := newBookingFixture(t, true)

	result, err := svc.Create(ctx, sessionID, BookingInput{
		DestinationID: "5",
		TravelDate:    "2026-11-11",
		Travelers:     1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.GetByID(ctx, uuid.New(), result.Booking.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for foreign session, got %v", err)
	}
}

func TestBookingProcessingHonorsCancellation(t *testing.T) {
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded returned error: %v", err)
	}
	scheduler := notify.NewScheduler(true)
	t.Cleanup(scheduler.Close)

	svc := NewBookingService(
		memory.NewBookingRepo(),
		NewDestinationService(cat),
		scheduler,
		BookingServiceConfig{ProcessingDelay: time.Minute},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Create(ctx, uuid.New(), BookingInput{
		DestinationID: "1",
		TravelDate:    "2026-10-01",
		Travelers:     1,
	})
	if !errors.Is(err, ErrBookingFailed) {
		t.Fatalf("expected ErrBookingFailed on canceled context, got %v", err)
	}
}
