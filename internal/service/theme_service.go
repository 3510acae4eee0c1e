package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/repository/ports"
)

// ThemeService derives the session's palette from its dark-mode flag. The two
// palettes are fixed; toggling only flips the flag.
type ThemeService struct {
	themes ports.ThemeRepository
}

func NewThemeService(themeRepo ports.ThemeRepository) *ThemeService {
	return &ThemeService{themes: themeRepo}
}

func (s *ThemeService) Current(ctx context.Context, sessionID uuid.UUID) (*domain.Theme, error) {
	dark, err := s.themes.Dark(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &domain.Theme{Dark: dark, Palette: domain.PaletteFor(dark)}, nil
}

// Toggle flips dark mode and returns the recomputed theme.
func (s *ThemeService) Toggle(ctx context.Context, sessionID uuid.UUID) (*domain.Theme, error) {
	dark, err := s.themes.Dark(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	dark = !dark
	if err := s.themes.SetDark(ctx, sessionID, dark); err != nil {
		return nil, err
	}
	return &domain.Theme{Dark: dark, Palette: domain.PaletteFor(dark)}, nil
}
