package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

const identityKey = "identity"

// TokenVerifier abstracts signature/expiry verification (internal/core/token).
type TokenVerifier interface {
	Verify(raw string) (userID, role string, err error)
}

// IdentityResolver is the subset of the user store the middleware needs.
type IdentityResolver interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth validates the bearer token and resolves the referenced identity onto
// the request context. A token whose subject no longer exists passes through
// without an identity; role gates downstream reject those requests.
func Auth(verifier TokenVerifier, users IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, _, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return next(c)
				}
				return err
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated user attached by Auth, or nil.
func IdentityFrom(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}
