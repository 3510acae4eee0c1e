package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AllowOrigins    []string
	LogLevel        string
	LogstashTCPAddr string

	SessionSecret string
	SessionTTL    time.Duration

	// CatalogPath points at a YAML catalog file. Empty means the embedded
	// seed catalog.
	CatalogPath string

	BookingProcessingDelay time.Duration
	NotificationDelay      time.Duration
	// NotificationsAllowed controls whether permission requests are granted.
	// False models a platform-level denial for every session.
	NotificationsAllowed bool

	EnableBooking       bool
	EnableNotifications bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:                   getenv("PORT", "8080"),
		AllowOrigins:           splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:               getenv("LOG_LEVEL", "info"),
		LogstashTCPAddr:        getenv("LOGSTASH_TCP_ADDR", ""),
		SessionSecret:          getenv("SESSION_SECRET", "roamio-dev-secret"),
		SessionTTL:             getduration("SESSION_TTL", 24*time.Hour),
		CatalogPath:            getenv("CATALOG_PATH", ""),
		BookingProcessingDelay: getduration("BOOKING_PROCESSING_DELAY", 2*time.Second),
		NotificationDelay:      getduration("NOTIFICATION_DELAY", 3*time.Second),
		NotificationsAllowed:   getenv("NOTIFICATIONS_ALLOWED", "true") == "true",
		EnableBooking:          getenv("ENABLE_BOOKING", "true") == "true",
		EnableNotifications:    getenv("ENABLE_NOTIFICATIONS", "true") == "true",
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getduration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed < 0 {
		log.Printf("Warning: invalid duration for %s: %q, using %s", k, v, d)
		return d
	}
	return parsed
}
