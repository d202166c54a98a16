package middleware

import (
	"fmt"
	"strings"

	"github.com/cashlink/cashlink/internal/pkg/jwt"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// JWTAuthMiddleware resolves the caller identity from a bearer token issued
// by the identity provider. Handlers read the actor from the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

// ActorID extracts the authenticated caller id from the echo context.
// The second return is false when no identity was resolved.
func ActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

// ActorRole extracts the authenticated caller role from the echo context
func ActorRole(c echo.Context) string {
	if role, ok := c.Get(ContextRole).(string); ok {
		return role
	}
	return ""
}
