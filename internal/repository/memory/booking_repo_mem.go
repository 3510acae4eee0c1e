package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/repository/ports"
)

type BookingRepository struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]domain.Booking
	bySession map[uuid.UUID][]uuid.UUID
}

func NewBookingRepo() *BookingRepository {
	return &BookingRepository{
		byID:      make(map[uuid.UUID]domain.Booking),
		bySession: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[booking.ID] = *booking
	r.bySession[booking.SessionID] = append(r.bySession[booking.SessionID], booking.ID)
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &booking, nil
}

func (r *BookingRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySession[sessionID]
	out := make([]domain.Booking, 0, len(ids))
	// Insertion order is creation order; walk backwards for most recent first.
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, r.byID[ids[i]])
	}
	return out, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
