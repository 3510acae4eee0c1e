package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roamio/roamio-api/internal/catalog"
	"github.com/roamio/roamio-api/internal/domain"
)

// DestinationService answers catalog queries. The catalog is immutable, so
// every method is a pure read.
type DestinationService struct {
	catalog *catalog.Catalog
}

func NewDestinationService(cat *catalog.Catalog) *DestinationService {
	return &DestinationService{catalog: cat}
}

// List runs the filter/sort pipeline over the whole catalog.
func (s *DestinationService) List(ctx context.Context, criteria domain.Criteria) ([]domain.Destination, error) {
	result, err := catalog.Apply(s.catalog.All(), criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCriteriaValidation, err)
	}
	return result, nil
}

func (s *DestinationService) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	dest, err := s.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}

func (s *DestinationService) Featured(ctx context.Context) []domain.Destination {
	return s.catalog.Featured()
}

func (s *DestinationService) Trending(ctx context.Context) []domain.Destination {
	return s.catalog.Trending()
}
