package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
}

func RegisterDestinations(e *echo.Echo, destService *service.DestinationService) {
	handler := &DestinationHandler{destinations: destService}

	public := e.Group("/api/v1/destinations")
	public.GET("", handler.listDestinations)
	public.GET("/featured", handler.listFeatured)
	public.GET("/trending", handler.listTrending)
	public.GET("/:id", handler.getDestination)
}

func (h *DestinationHandler) listDestinations(c echo.Context) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	destinations, err := h.destinations.List(c.Request().Context(), criteria)
	if err != nil {
		if errors.Is(err, service.ErrCriteriaValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list destinations"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": destinations,
		"meta": util.Envelope{
			"count": len(destinations),
			"criteria": util.Envelope{
				"search":     criteria.Search,
				"category":   criteria.Category,
				"price_min":  criteria.PriceMin,
				"price_max":  criteria.PriceMax,
				"difficulty": criteria.Difficulty,
				"sort":       criteria.Sort,
			},
		},
	})
}

func (h *DestinationHandler) listFeatured(c echo.Context) error {
	destinations := h.destinations.Featured(c.Request().Context())
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": destinations,
		"meta":         util.Envelope{"count": len(destinations)},
	})
}

func (h *DestinationHandler) listTrending(c echo.Context) error {
	destinations := h.destinations.Trending(c.Request().Context())
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": destinations,
		"meta":         util.Envelope{"count": len(destinations)},
	})
}

func (h *DestinationHandler) getDestination(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, util.Error("destination id required"))
	}

	dest, err := h.destinations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destination"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"destination": dest})
}

// parseCriteria reads the filter/sort configuration from the query string.
// Unset parameters keep their defaults; malformed or unknown values are
// rejected rather than silently ignored.
func parseCriteria(c echo.Context) (domain.Criteria, error) {
	criteria := domain.DefaultCriteria()

	criteria.Search = strings.TrimSpace(c.QueryParam("search"))

	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		value := strings.ToLower(raw)
		if value != domain.FilterAll {
			if _, err := domain.ParseCategory(value); err != nil {
				return domain.Criteria{}, err
			}
		}
		criteria.Category = value
	}

	if raw := strings.TrimSpace(c.QueryParam("price_min")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Criteria{}, errors.New("price_min must be a number")
		}
		if parsed < 0 {
			return domain.Criteria{}, errors.New("price_min must be non-negative")
		}
		criteria.PriceMin = parsed
	}
	if raw := strings.TrimSpace(c.QueryParam("price_max")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Criteria{}, errors.New("price_max must be a number")
		}
		if parsed < 0 {
			return domain.Criteria{}, errors.New("price_max must be non-negative")
		}
		criteria.PriceMax = parsed
	}
	if criteria.PriceMin > criteria.PriceMax {
		return domain.Criteria{}, errors.New("price_min cannot be greater than price_max")
	}

	if raw := strings.TrimSpace(c.QueryParam("difficulty")); raw != "" {
		value := strings.ToLower(raw)
		if value != domain.FilterAll {
			if _, err := domain.ParseDifficulty(value); err != nil {
				return domain.Criteria{}, err
			}
		}
		criteria.Difficulty = value
	}

	if raw := strings.TrimSpace(c.QueryParam("sort")); raw != "" {
		sort, err := domain.ParseSortKey(strings.ToLower(raw))
		if err != nil {
			return domain.Criteria{}, fmt.Errorf("invalid sort value %q", raw)
		}
		criteria.Sort = sort
	}

	return criteria, nil
}
