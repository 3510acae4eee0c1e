package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/roamio/roamio-api/internal/config"
	"github.com/roamio/roamio-api/internal/notify"
	"github.com/roamio/roamio-api/internal/service"
)

// Services groups everything the HTTP surface depends on.
type Services struct {
	Sessions     *service.SessionService
	Destinations *service.DestinationService
	Favorites    *service.FavoriteService
	Themes       *service.ThemeService
	Bookings     *service.BookingService
	Scheduler    *notify.Scheduler
}

// NewServer builds the echo instance with middleware and every route group
// registered.
func NewServer(cfg config.Config, logger *slog.Logger, svcs Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
	}))
	registerLogging(e, logger)

	RegisterPages(e)
	RegisterSwagger(e)
	RegisterSessions(e, svcs.Sessions)
	RegisterDestinations(e, svcs.Destinations)
	RegisterFavorites(e, svcs.Sessions, svcs.Favorites)
	RegisterTheme(e, svcs.Sessions, svcs.Themes)
	RegisterBookings(e, svcs.Sessions, svcs.Bookings, cfg.EnableBooking)
	RegisterNotifications(e, svcs.Sessions, svcs.Scheduler, cfg.EnableNotifications)

	return e
}
