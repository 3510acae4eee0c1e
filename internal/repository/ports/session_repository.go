package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

// ThemeRepository keeps each session's dark-mode flag. The flag is seeded once
// from the color scheme reported at session start and flipped by toggles.
type ThemeRepository interface {
	Seed(ctx context.Context, sessionID uuid.UUID, dark bool) error
	Dark(ctx context.Context, sessionID uuid.UUID) (bool, error)
	SetDark(ctx context.Context, sessionID uuid.UUID, dark bool) error
}
