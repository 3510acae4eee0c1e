package domain

import (
	"fmt"
	"strings"
)

// Category is the closed set of destination categories.
type Category string

const (
	CategoryBeach       Category = "beach"
	CategoryMountain    Category = "mountain"
	CategoryCity        Category = "city"
	CategoryCountryside Category = "countryside"
	CategoryCultural    Category = "cultural"
)

// Difficulty grades how demanding a trip is.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Destination is one catalog entry. Records are immutable once the catalog has
// loaded; every consumer treats them as read-only.
type Destination struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Country     string      `json:"country" yaml:"country"`
	Images      []string    `json:"images" yaml:"images"`
	Rating      float64     `json:"rating" yaml:"rating"`
	ReviewCount int         `json:"review_count" yaml:"review_count"`
	Price       float64     `json:"price" yaml:"price"`
	Currency    string      `json:"currency" yaml:"currency"`
	Description string      `json:"description" yaml:"description"`
	Highlights  []string    `json:"highlights" yaml:"highlights"`
	Category    Category    `json:"category" yaml:"category"`
	Duration    string      `json:"duration" yaml:"duration"`
	Difficulty  Difficulty  `json:"difficulty" yaml:"difficulty"`
	BestTime    string      `json:"best_time" yaml:"best_time"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Amenities   []string    `json:"amenities" yaml:"amenities"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Featured    bool        `json:"featured" yaml:"featured"`
	Trending    bool        `json:"trending" yaml:"trending"`
}

// Image returns the primary image, the first entry of Images.
func (d Destination) Image() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0]
}

func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryBeach:
		return CategoryBeach, nil
	case CategoryMountain:
		return CategoryMountain, nil
	case CategoryCity:
		return CategoryCity, nil
	case CategoryCountryside:
		return CategoryCountryside, nil
	case CategoryCultural:
		return CategoryCultural, nil
	default:
		return "", fmt.Errorf("unknown category %q", raw)
	}
}

func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyModerate:
		return DifficultyModerate, nil
	case DifficultyChallenging:
		return DifficultyChallenging, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", raw)
	}
}
