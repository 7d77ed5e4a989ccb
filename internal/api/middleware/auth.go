package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zegenlabs/todo-api/internal/api/metrics"
	"github.com/zegenlabs/todo-api/internal/core/domain"
	"github.com/zegenlabs/todo-api/internal/core/ports"
)

// Auth guards protected routes with a bearer token check.
//
// A missing or malformed Authorization header is 401: the caller never
// presented a credential. A header that carries a token which fails
// verification (bad signature, malformed payload, expired) is 403: a
// credential was presented and rejected. On success the verified username is
// injected into the echo context under "username".
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthRejectionsTotal.WithLabelValues("expired_token").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "token expired")
				}
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
