package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

type FavoriteItemResponse struct {
	DestinationID string              `json:"destination_id"`
	SavedAt       string              `json:"saved_at"`
	Destination   *domain.Destination `json:"destination,omitempty"`
}

func RegisterFavorites(e *echo.Echo, sessions *service.SessionService, favorites *service.FavoriteService) {
	handler := &FavoriteHandler{favorites: favorites}

	group := e.Group("/api/v1/me/favorites", RequireSession(sessions))
	group.POST("/toggle", handler.toggleFavorite)
	group.GET("", handler.listFavorites)
	group.DELETE("", handler.clearFavorites)
}

func (h *FavoriteHandler) toggleFavorite(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	var req struct {
		DestinationID string `json:"destination_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	destinationID := strings.TrimSpace(req.DestinationID)
	if destinationID == "" {
		return c.JSON(http.StatusBadRequest, util.Error("destination_id is required"))
	}

	saved, err := h.favorites.Toggle(c.Request().Context(), session.ID, destinationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not update favorites"))
	}

	message := "Destination removed from Favorites"
	if saved {
		message = "Destination saved to Favorites"
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": destinationID,
		"saved":          saved,
		"message":        message,
	})
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	result, err := h.favorites.List(c.Request().Context(), session.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load favorites"))
	}

	items := make([]FavoriteItemResponse, 0, len(result))
	for _, item := range result {
		items = append(items, FavoriteItemResponse{
			DestinationID: item.DestinationID,
			SavedAt:       item.SavedAt.UTC().Format(time.RFC3339),
			Destination:   item.Destination,
		})
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"items": items,
		"count": len(items),
	})
}

func (h *FavoriteHandler) clearFavorites(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok || session == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	if err := h.favorites.Clear(c.Request().Context(), session.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not clear favorites"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"message": "Favorites cleared"})
}
