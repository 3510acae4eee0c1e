package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/repository/ports"
)

type SessionRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Session
}

func NewSessionRepo() *SessionRepository {
	return &SessionRepository{items: make(map[uuid.UUID]domain.Session)}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[session.ID] = *session
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &session, nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

type ThemeRepository struct {
	mu   sync.RWMutex
	dark map[uuid.UUID]bool
}

func NewThemeRepo() *ThemeRepository {
	return &ThemeRepository{dark: make(map[uuid.UUID]bool)}
}

func (r *ThemeRepository) Seed(ctx context.Context, sessionID uuid.UUID, dark bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dark[sessionID] = dark
	return nil
}

func (r *ThemeRepository) Dark(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dark, ok := r.dark[sessionID]
	if !ok {
		return false, ports.ErrNotFound
	}
	return dark, nil
}

func (r *ThemeRepository) SetDark(ctx context.Context, sessionID uuid.UUID, dark bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dark[sessionID]; !ok {
		return ports.ErrNotFound
	}
	r.dark[sessionID] = dark
	return nil
}

var _ ports.ThemeRepository = (*ThemeRepository)(nil)
