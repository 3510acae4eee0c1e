package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamio/roamio-api/internal/domain"
	"github.com/roamio/roamio-api/internal/service"
	"github.com/roamio/roamio-api/internal/util"
)

const contextSessionKey = "roamio.session"

// RequireSession resolves the bearer session token and stores the session on
// the request context. Session-scoped routes refuse requests without one.
func RequireSession(sessions *service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing session token"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			session, err := sessions.Resolve(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid or expired session"))
			}
			c.Set(contextSessionKey, session)
			return next(c)
		}
	}
}

func CurrentSession(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(contextSessionKey).(*domain.Session)
	return session, ok
}
