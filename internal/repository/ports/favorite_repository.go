package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
)

// FavoriteRepository holds each session's set of saved destination ids.
// Membership is the contract; ids are accepted without catalog validation.
type FavoriteRepository interface {
	// Toggle adds the id if absent and removes it if present, reporting
	// whether the id is saved afterwards.
	Toggle(ctx context.Context, sessionID uuid.UUID, destinationID string) (saved bool, err error)
	IsFavorite(ctx context.Context, sessionID uuid.UUID, destinationID string) (bool, error)
	// List returns the session's favorites ordered by save time.
	List(ctx context.Context, sessionID uuid.UUID) ([]domain.Favorite, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}
