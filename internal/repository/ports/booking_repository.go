package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	// ListBySession returns the session's bookings, most recent first.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Booking, error)
}
