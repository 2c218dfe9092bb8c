package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/infrastructure/token"
)

const actorKey = "actor"

// RequireAuth validates the bearer token and resolves the acting user. Role
// gating happens in the usecases; this only establishes identity.
func RequireAuth(tokens *token.Manager, users user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if !strings.HasPrefix(raw, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "message": "missing bearer token",
				})
			}
			claims, err := tokens.Parse(strings.TrimPrefix(raw, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "message": "invalid or expired token",
				})
			}
			acct, err := users.GetByUserID(c.Request().Context(), claims.Subject)
			if err != nil || !acct.IsActive {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "message": "unknown or inactive account",
				})
			}
			c.Set(actorKey, user.Actor{ID: acct.ID, UserID: acct.UserID, Role: acct.Role})
			return next(c)
		}
	}
}

// ActorFrom returns the authenticated actor set by RequireAuth.
func ActorFrom(c echo.Context) (user.Actor, bool) {
	a, ok := c.Get(actorKey).(user.Actor)
	return a, ok
}
