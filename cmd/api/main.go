package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/roamio/roamio-api/internal/catalog"
	"github.com/roamio/roamio-api/internal/config"
	"github.com/roamio/roamio-api/internal/logging"
	"github.com/roamio/roamio-api/internal/notify"
	"github.com/roamio/roamio-api/internal/repository/memory"
	"github.com/roamio/roamio-api/internal/service"
	transporthttp "github.com/roamio/roamio-api/internal/transport/http"
	"github.com/roamio/roamio-api/internal/util"
)

func main() {
	cfg := config.Load()

	logger, logCloser := logging.New(parseLogLevel(cfg.LogLevel), cfg.LogstashTCPAddr)
	if logCloser != nil {
		defer logCloser.Close()
	}
	slog.SetDefault(logger)

	cat, err := loadCatalog(cfg)
	if err != nil {
		logger.Error("load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "destinations", cat.Len())

	sessionRepo := memory.NewSessionRepo()
	themeRepo := memory.NewThemeRepo()
	favoriteRepo := memory.NewFavoriteRepo()
	bookingRepo := memory.NewBookingRepo()

	scheduler := notify.NewScheduler(cfg.NotificationsAllowed)
	defer scheduler.Close()

	tokens := util.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)

	destinations := service.NewDestinationService(cat)
	sessions := service.NewSessionService(sessionRepo, themeRepo, tokens)
	favorites := service.NewFavoriteService(favoriteRepo, cat)
	themes := service.NewThemeService(themeRepo)
	bookings := service.NewBookingService(bookingRepo, destinations, scheduler, service.BookingServiceConfig{
		ProcessingDelay:   cfg.BookingProcessingDelay,
		NotificationDelay: cfg.NotificationDelay,
	})

	e := transporthttp.NewServer(cfg, logger, transporthttp.Services{
		Sessions:     sessions,
		Destinations: destinations,
		Favorites:    favorites,
		Themes:       themes,
		Bookings:     bookings,
		Scheduler:    scheduler,
	})

	logger.Info("starting server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.LoadEmbedded()
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
