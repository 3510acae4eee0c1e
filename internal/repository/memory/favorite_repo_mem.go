// Package memory provides the in-memory repository implementations. State is
// process-local and guarded for concurrent HTTP access; it is gone on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/repository/ports"
)

type FavoriteRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]map[string]time.Time
	now   func() time.Time
}

func NewFavoriteRepo() *FavoriteRepository {
	return &FavoriteRepository{
		items: make(map[uuid.UUID]map[string]time.Time),
		now:   time.Now,
	}
}

func (r *FavoriteRepository) Toggle(ctx context.Context, sessionID uuid.UUID, destinationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.items[sessionID]
	if !ok {
		set = make(map[string]time.Time)
		r.items[sessionID] = set
	}

	if _, saved := set[destinationID]; saved {
		delete(set, destinationID)
		return false, nil
	}
	set[destinationID] = r.now()
	return true, nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, sessionID uuid.UUID, destinationID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, saved := r.items[sessionID][destinationID]
	return saved, nil
}

func (r *FavoriteRepository) List(ctx context.Context, sessionID uuid.UUID) ([]domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.items[sessionID]
	out := make([]domain.Favorite, 0, len(set))
	for id, savedAt := range set {
		out = append(out, domain.Favorite{
			SessionID:     sessionID,
			DestinationID: id,
			SavedAt:       savedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].DestinationID < out[j].DestinationID
		}
		return out[i].SavedAt.Before(out[j].SavedAt)
	})
	return out, nil
}

func (r *FavoriteRepository) Clear(ctx context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sessionID)
	return nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
