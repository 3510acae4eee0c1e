package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusScheduled NotificationStatus = "scheduled"
	NotificationStatusDelivered NotificationStatus = "delivered"
)

// Notification is a local reminder scheduled for a session. DeliverAt is the
// wall-clock moment the scheduler moves it to the delivered inbox.
type Notification struct {
	ID          uuid.UUID          `json:"id"`
	SessionID   uuid.UUID          `json:"session_id"`
	Title       string             `json:"title"`
	Body        string             `json:"body"`
	ScheduledAt time.Time          `json:"scheduled_at"`
	DeliverAt   time.Time          `json:"deliver_at"`
	Status      NotificationStatus `json:"status"`
}
