package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/notify"
	"github.com/roamio/roamio-api/internal/repository/ports"
)

// NotificationOutcome reports what happened to the booking-confirmation
// reminder. A denied permission never fails the booking; it is surfaced here
// and the client decides what to show.
type NotificationOutcome string

const (
	NotificationScheduled        NotificationOutcome = "scheduled"
	NotificationPermissionDenied NotificationOutcome = "permission_denied"
	NotificationFailed           NotificationOutcome = "failed"
)

type BookingInput struct {
	DestinationID   string
	TravelDate      string
	Travelers       int
	SpecialRequests string
}

type BookingResult struct {
	Booking      *domain.Booking
	Notification NotificationOutcome
}

type BookingServiceConfig struct {
	// ProcessingDelay simulates the payment-processor round trip. Zero
	// disables the delay.
	ProcessingDelay time.Duration
	// NotificationDelay is how long after confirmation the reminder fires.
	NotificationDelay time.Duration
}

type BookingService struct {
	bookings     ports.BookingRepository
	destinations *DestinationService
	scheduler    *notify.Scheduler
	cfg          BookingServiceConfig
}

func NewBookingService(bookingRepo ports.BookingRepository, destinations *DestinationService, scheduler *notify.Scheduler, cfg BookingServiceConfig) *BookingService {
	return &BookingService{
		bookings:     bookingRepo,
		destinations: destinations,
		scheduler:    scheduler,
		cfg:          cfg,
	}
}

// Create validates the input, simulates processing, stores the booking and
// schedules the confirmation reminder. Validation failures mutate nothing.
func (s *BookingService) Create(ctx context.Context, sessionID uuid.UUID, input BookingInput) (*BookingResult, error) {
	if strings.TrimSpace(input.TravelDate) == "" {
		return nil, fmt.Errorf("%w: travel date is required", ErrBookingValidation)
	}
	if input.Travelers < 1 {
		return nil, fmt.Errorf("%w: at least one traveler is required", ErrBookingValidation)
	}

	dest, err := s.destinations.GetByID(ctx, input.DestinationID)
	if err != nil {
		return nil, err
	}

	if err := s.process(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingFailed, err)
	}

	booking := &domain.Booking{
		ID:              uuid.New(),
		SessionID:       sessionID,
		DestinationID:   dest.ID,
		DestinationName: dest.Name,
		TravelDate:      strings.TrimSpace(input.TravelDate),
		Travelers:       input.Travelers,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		TotalPrice:      dest.Price * float64(input.Travelers),
		Currency:        dest.Currency,
		Status:          domain.BookingStatusConfirmed,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingFailed, err)
	}

	outcome := NotificationScheduled
	_, err = s.scheduler.Schedule(
		sessionID,
		"Booking Confirmed!",
		fmt.Sprintf("Your trip to %s has been confirmed for %s.", booking.DestinationName, booking.TravelDate),
		s.cfg.NotificationDelay,
	)
	switch {
	case errors.Is(err, notify.ErrPermissionDenied):
		outcome = NotificationPermissionDenied
	case err != nil:
		outcome = NotificationFailed
	}

	return &BookingResult{Booking: booking, Notification: outcome}, nil
}

// process waits out the simulated processing delay, honoring cancellation.
func (s *BookingService) process(ctx context.Context) error {
	if s.cfg.ProcessingDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.cfg.ProcessingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *BookingService) GetByID(ctx context.Context, sessionID, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	// Sessions only see their own bookings.
	if booking.SessionID != sessionID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) ListTrips(ctx context.Context, sessionID uuid.UUID) ([]domain.Booking, error) {
	return s.bookings.ListBySession(ctx, sessionID)
}
