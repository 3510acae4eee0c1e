package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking is a confirmed mock booking. No payment is processed; the total is
// price times travelers at the moment of booking.
type Booking struct {
	ID              uuid.UUID     `json:"id"`
	SessionID       uuid.UUID     `json:"session_id"`
	DestinationID   string        `json:"destination_id"`
	DestinationName string        `json:"destination_name"`
	TravelDate      string        `json:"travel_date"`
	Travelers       int           `json:"travelers"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	TotalPrice      float64       `json:"total_price"`
	Currency        string        `json:"currency"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}
