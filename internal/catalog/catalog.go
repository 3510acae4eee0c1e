// Package catalog holds the static destination catalog. Records are loaded
// once at startup, either from the embedded seed or from an operator-supplied
// YAML file, and are read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"os"

	_ "embed"

	"github.com/ghodss/yaml"

	"github.com/roamio/roamio-api/internal/domain"
)

//go:embed destinations.yaml
var seedYAML []byte

// ErrNotFound is returned by ByID for ids absent from the catalog.
var ErrNotFound = errors.New("destination not found")

type seedFile struct {
	Destinations []domain.Destination `json:"destinations"`
}

// Catalog is an immutable, insertion-ordered set of destinations with an id
// index for constant-time lookup.
type Catalog struct {
	items []domain.Destination
	byID  map[string]int
}

// Load builds a catalog from raw YAML.
func Load(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(seed.Destinations) == 0 {
		return nil, errors.New("catalog is empty")
	}

	byID := make(map[string]int, len(seed.Destinations))
	for i, d := range seed.Destinations {
		if d.ID == "" {
			return nil, fmt.Errorf("destination at position %d has no id", i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate destination id %q", d.ID)
		}
		if len(d.Images) == 0 {
			return nil, fmt.Errorf("destination %q has no images", d.ID)
		}
		if _, err := domain.ParseCategory(string(d.Category)); err != nil {
			return nil, fmt.Errorf("destination %q: %w", d.ID, err)
		}
		if _, err := domain.ParseDifficulty(string(d.Difficulty)); err != nil {
			return nil, fmt.Errorf("destination %q: %w", d.ID, err)
		}
		byID[d.ID] = i
	}

	return &Catalog{items: seed.Destinations, byID: byID}, nil
}

// LoadEmbedded builds the catalog from the compiled-in seed data.
func LoadEmbedded() (*Catalog, error) {
	return Load(seedYAML)
}

// LoadFile builds the catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Load(data)
}

// All returns every destination in insertion order. The returned slice is a
// copy; callers may reorder it freely.
func (c *Catalog) All() []domain.Destination {
	out := make([]domain.Destination, len(c.items))
	copy(out, c.items)
	return out
}

// ByID looks up a destination by id.
func (c *Catalog) ByID(id string) (*domain.Destination, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	d := c.items[i]
	return &d, nil
}

// Featured returns destinations flagged as featured, in insertion order.
func (c *Catalog) Featured() []domain.Destination {
	return c.selectFlagged(func(d domain.Destination) bool { return d.Featured })
}

// Trending returns destinations flagged as trending, in insertion order.
func (c *Catalog) Trending() []domain.Destination {
	return c.selectFlagged(func(d domain.Destination) bool { return d.Trending })
}

func (c *Catalog) selectFlagged(keep func(domain.Destination) bool) []domain.Destination {
	out := make([]domain.Destination, 0)
	for _, d := range c.items {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.items)
}
