package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/roamio/roamio-api/internal/domain"
)

// Apply filters and orders a destination slice by the given criteria. It is
// pure: the input slice is never mutated and identical inputs always yield the
// same ordered output. Ties under every comparator keep the input order, so
// results fall back to catalog insertion order.
//
// Unknown sort keys and inverted price intervals are rejected rather than
// silently producing an undefined order.
func Apply(items []domain.Destination, criteria domain.Criteria) ([]domain.Destination, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(criteria.Search))

	filtered := make([]domain.Destination, 0, len(items))
	for _, d := range items {
		if !matchesSearch(d, query) {
			continue
		}
		if criteria.Category != domain.FilterAll && string(d.Category) != criteria.Category {
			continue
		}
		if d.Price < criteria.PriceMin || d.Price > criteria.PriceMax {
			continue
		}
		if criteria.Difficulty != domain.FilterAll && string(d.Difficulty) != criteria.Difficulty {
			continue
		}
		filtered = append(filtered, d)
	}

	less := comparatorFor(criteria.Sort)
	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j])
	})

	return filtered, nil
}

func matchesSearch(d domain.Destination, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), query) ||
		strings.Contains(strings.ToLower(d.Country), query)
}

func comparatorFor(key domain.SortKey) func(a, b domain.Destination) bool {
	switch key {
	case domain.SortByPrice:
		return func(a, b domain.Destination) bool { return a.Price < b.Price }
	case domain.SortByName:
		// Collators are not safe for concurrent use, so each call builds
		// its own.
		coll := collate.New(language.English, collate.IgnoreCase)
		return func(a, b domain.Destination) bool {
			return coll.CompareString(a.Name, b.Name) < 0
		}
	default:
		return func(a, b domain.Destination) bool { return a.Rating > b.Rating }
	}
}
