package domain

import (
	"time"

	"github.com/google/uuid"
)

// ColorScheme is the host platform's reported appearance preference, captured
// once when the session starts.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// Session is an anonymous per-client handle. Favorites, theme state and the
// notification permission all hang off the session id; nothing survives past
// the session.
type Session struct {
	ID          uuid.UUID   `json:"id"`
	ColorScheme ColorScheme `json:"color_scheme"`
	CreatedAt   time.Time   `json:"created_at"`
}
