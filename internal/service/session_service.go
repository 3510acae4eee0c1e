package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/repository/ports"
	"github.com/roamio/roamio-api/internal/util"
)

// SessionService mints and resolves anonymous sessions. A session carries no
// identity; its token is just the handle clients present to reach their
// favorites, theme and notification state.
type SessionService struct {
	sessions ports.SessionRepository
	themes   ports.ThemeRepository
	tokens   *util.TokenManager
}

type SessionStartResult struct {
	Session   *domain.Session
	Token     string
	ExpiresAt time.Time
	Theme     domain.Theme
}

func NewSessionService(sessionRepo ports.SessionRepository, themeRepo ports.ThemeRepository, tokens *util.TokenManager) *SessionService {
	return &SessionService{sessions: sessionRepo, themes: themeRepo, tokens: tokens}
}

// Start creates a session seeded with the client's reported color scheme.
// Anything other than "dark" seeds the light theme.
func (s *SessionService) Start(ctx context.Context, scheme domain.ColorScheme) (*SessionStartResult, error) {
	session := &domain.Session{
		ID:          uuid.New(),
		ColorScheme: scheme,
		CreatedAt:   time.Now().UTC(),
	}
	if session.ColorScheme != domain.ColorSchemeDark {
		session.ColorScheme = domain.ColorSchemeLight
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	dark := session.ColorScheme == domain.ColorSchemeDark
	if err := s.themes.Seed(ctx, session.ID, dark); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(session.ID)
	if err != nil {
		return nil, err
	}

	return &SessionStartResult{
		Session:   session,
		Token:     token,
		ExpiresAt: expiresAt,
		Theme:     domain.Theme{Dark: dark, Palette: domain.PaletteFor(dark)},
	}, nil
}

// Resolve validates a session token and loads the session behind it.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessions.Find(ctx, claims.SessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
