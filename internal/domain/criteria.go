package domain

import "fmt"

// FilterAll is the wildcard value accepted for the category and difficulty
// clauses of a Criteria.
const FilterAll = "all"

// DefaultPriceMax is the upper bound of the default price interval.
const DefaultPriceMax = 3000

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortByRating SortKey = "rating"
	SortByPrice  SortKey = "price"
	SortByName   SortKey = "name"
)

// ParseSortKey rejects unknown sort values instead of falling through to an
// undefined order.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case SortByRating:
		return SortByRating, nil
	case SortByPrice:
		return SortByPrice, nil
	case SortByName:
		return SortByName, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
}

// Criteria is the user-selected filter and sort configuration for a catalog
// query. The zero value is not meaningful; use DefaultCriteria.
type Criteria struct {
	Search     string
	Category   string // FilterAll or a Category value
	PriceMin   float64
	PriceMax   float64
	Difficulty string // FilterAll or a Difficulty value
	Sort       SortKey
}

// DefaultCriteria matches everything and orders by rating.
func DefaultCriteria() Criteria {
	return Criteria{
		Search:     "",
		Category:   FilterAll,
		PriceMin:   0,
		PriceMax:   DefaultPriceMax,
		Difficulty: FilterAll,
		Sort:       SortByRating,
	}
}

// Validate checks the pieces that cannot be expressed in the type itself.
func (c Criteria) Validate() error {
	if c.PriceMin < 0 {
		return fmt.Errorf("price minimum must be non-negative, got %v", c.PriceMin)
	}
	if c.PriceMin > c.PriceMax {
		return fmt.Errorf("price minimum %v exceeds maximum %v", c.PriceMin, c.PriceMax)
	}
	if c.Category != FilterAll {
		if _, err := ParseCategory(c.Category); err != nil {
			return err
		}
	}
	if c.Difficulty != FilterAll {
		if _, err := ParseDifficulty(c.Difficulty); err != nil {
			return err
		}
	}
	if _, err := ParseSortKey(string(c.Sort)); err != nil {
		return err
	}
	return nil
}
