package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/notify"
	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

type NotificationHandler struct {
	scheduler *notify.Scheduler
	enabled   bool
}

func RegisterNotifications(e *echo.Echo, sessions *service.SessionService, scheduler *notify.Scheduler, enabled bool) {
	handler := &NotificationHandler{scheduler: scheduler, enabled: enabled}

	group := e.Group("/api/v1/me/notifications", RequireSession(sessions))
	group.POST("/permission", handler.requestPermission)
	group.GET("", handler.listDelivered)
}

func (h *NotificationHandler) requestPermission(c echo.Context) error {
	if !h.enabled {
		return c.JSON(http.StatusForbidden, util.Error("notifications are disabled"))
	}

	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	granted := h.scheduler.RequestPermission(session.ID)
	return c.JSON(http.StatusOK, util.Envelope{"granted": granted})
}

func (h *NotificationHandler) listDelivered(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	notifications := h.scheduler.Delivered(session.ID)
	return c.JSON(http.StatusOK, util.Envelope{
		"notifications": notifications,
		"count":         len(notifications),
	})
}
