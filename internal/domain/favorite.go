package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a destination id as saved by a session. The id is not
// validated against the catalog: the set is deliberately decoupled so it can
// be exercised without catalog contents, and unknown ids simply never join to
// a destination at display time.
type Favorite struct {
	SessionID     uuid.UUID `json:"session_id"`
	DestinationID string    `json:"destination_id"`
	SavedAt       time.Time `json:"saved_at"`
}

// FavoriteListItem is a favorite joined against the catalog for display.
// Destination is nil when the saved id has no catalog entry.
type FavoriteListItem struct {
	Favorite
	Destination *Destination `json:"destination,omitempty"`
}
