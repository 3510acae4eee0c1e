package service

import (
	"errors"

	"github.com/roamio/roamio-api/internal/repository/ports"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingValidation   = errors.New("booking validation failed")
	ErrBookingFailed       = errors.New("booking failed")
	ErrCriteriaValidation  = errors.New("invalid filter criteria")
)

func isNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}
