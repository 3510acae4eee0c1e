package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

type SessionHandler struct {
	sessions *service.SessionService
}

func RegisterSessions(e *echo.Echo, sessions *service.SessionService) {
	handler := &SessionHandler{sessions: sessions}
	e.POST("/api/v1/sessions", handler.startSession)
}

func (h *SessionHandler) startSession(c echo.Context) error {
	var req struct {
		ColorScheme string `json:"color_scheme"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.sessions.Start(c.Request().Context(), domain.ColorScheme(req.ColorScheme))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to start session"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"session": util.Envelope{
			"id":           result.Session.ID,
			"color_scheme": result.Session.ColorScheme,
			"created_at":   result.Session.CreatedAt.Format(time.RFC3339),
		},
		"token":      result.Token,
		"expires_at": result.ExpiresAt.UTC().Format(time.RFC3339),
		"theme":      result.Theme,
	})
}
