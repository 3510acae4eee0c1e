package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/catalog"
	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/repository/ports"
)

// FavoriteService manages each session's saved destinations. Ids are accepted
// without checking the catalog; the set stays usable and testable regardless
// of catalog contents, and unknown ids just never resolve at display time.
type FavoriteService struct {
	favorites ports.FavoriteRepository
	catalog   *catalog.Catalog
}

func NewFavoriteService(favoriteRepo ports.FavoriteRepository, cat *catalog.Catalog) *FavoriteService {
	return &FavoriteService{favorites: favoriteRepo, catalog: cat}
}

// Toggle flips membership for the id and reports whether it is saved now.
// Two identical toggles in sequence restore the prior state.
func (s *FavoriteService) Toggle(ctx context.Context, sessionID uuid.UUID, destinationID string) (bool, error) {
	return s.favorites.Toggle(ctx, sessionID, destinationID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, sessionID uuid.UUID, destinationID string) (bool, error) {
	return s.favorites.IsFavorite(ctx, sessionID, destinationID)
}

// List joins the saved ids against the catalog. Ids with no catalog entry are
// kept with a nil Destination so the set is reported faithfully.
func (s *FavoriteService) List(ctx context.Context, sessionID uuid.UUID) ([]domain.FavoriteListItem, error) {
	favorites, err := s.favorites.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FavoriteListItem, 0, len(favorites))
	for _, fav := range favorites {
		item := domain.FavoriteListItem{Favorite: fav}
		if dest, err := s.catalog.ByID(fav.DestinationID); err == nil {
			item.Destination = dest
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *FavoriteService) Clear(ctx context.Context, sessionID uuid.UUID) error {
	return s.favorites.Clear(ctx, sessionID)
}
