// Package notify schedules local notifications for sessions. It stands in for
// the platform notification service: permission is granted per session, a
// scheduled notification sits on a timer until its delivery moment, and
// delivered notifications land in a per-session inbox the client can poll.
package notify

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain"
)

var (
	// ErrPermissionDenied is returned when a session schedules without a
	// granted permission. Callers decide whether to surface the denial.
	ErrPermissionDenied = errors.New("notification permission not granted")
	ErrSchedulerClosed  = errors.New("notification scheduler closed")
)

// Scheduler is safe for concurrent use. Close cancels every pending timer.
type Scheduler struct {
	grantOnRequest bool
	now            func() time.Time

	mu        sync.Mutex
	granted   map[uuid.UUID]bool
	pending   map[uuid.UUID]*time.Timer
	delivered map[uuid.UUID][]domain.Notification
	closed    bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// NewScheduler builds a scheduler. When grantOnRequest is false every
// permission request is refused, modelling a platform-level denial.
func NewScheduler(grantOnRequest bool, opts ...Option) *Scheduler {
	s := &Scheduler{
		grantOnRequest: grantOnRequest,
		now:            time.Now,
		granted:        make(map[uuid.UUID]bool),
		pending:        make(map[uuid.UUID]*time.Timer),
		delivered:      make(map[uuid.UUID][]domain.Notification),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestPermission records the session's permission request and reports
// whether notifications were granted.
func (s *Scheduler) RequestPermission(sessionID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.granted[sessionID] = s.grantOnRequest
	return s.grantOnRequest
}

// PermissionGranted reports the session's current grant state.
func (s *Scheduler) PermissionGranted(sessionID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.granted[sessionID]
}

// Schedule queues a notification for delivery after delay. Scheduling without
// a granted permission fails with ErrPermissionDenied; nothing is queued.
func (s *Scheduler) Schedule(sessionID uuid.UUID, title, body string, delay time.Duration) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSchedulerClosed
	}
	if !s.granted[sessionID] {
		return nil, ErrPermissionDenied
	}

	notif := domain.Notification{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Title:       title,
		Body:        body,
		ScheduledAt: s.now(),
		DeliverAt:   s.now().Add(delay),
		Status:      domain.NotificationStatusScheduled,
	}

	id := notif.ID
	s.pending[id] = time.AfterFunc(delay, func() {
		s.deliver(id, notif)
	})

	return &notif, nil
}

func (s *Scheduler) deliver(id uuid.UUID, notif domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	delete(s.pending, id)
	notif.Status = domain.NotificationStatusDelivered
	s.delivered[notif.SessionID] = append(s.delivered[notif.SessionID], notif)
}

// Delivered returns the session's delivered notifications in delivery order.
func (s *Scheduler) Delivered(sessionID uuid.UUID) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.delivered[sessionID]
	out := make([]domain.Notification, len(items))
	copy(out, items)
	return out
}

// PendingCount reports how many notifications are still on timers.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Close stops every pending timer. Scheduled but undelivered notifications
// are dropped.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}
