package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

type ThemeHandler struct {
	themes *service.ThemeService
}

func RegisterTheme(e *echo.Echo, sessions *service.SessionService, themes *service.ThemeService) {
	handler := &ThemeHandler{themes: themes}

	group := e.Group("/api/v1/me/theme", RequireSession(sessions))
	group.GET("", handler.currentTheme)
	group.POST("/toggle", handler.toggleTheme)
}

func (h *ThemeHandler) currentTheme(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	theme, err := h.themes.Current(c.Request().Context(), session.ID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("session not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load theme"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"theme": theme})
}

func (h *ThemeHandler) toggleTheme(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	theme, err := h.themes.Toggle(c.Request().Context(), session.ID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("session not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to toggle theme"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"theme": theme})
}
