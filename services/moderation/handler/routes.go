package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/middleware"
)

// RegisterRoutes registers the moderation HTTP routes. The queue and
// decisions are admin-only, enforced by role inside the handlers.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	mod := e.Group("/moderation", middleware.JWTAuthMiddleware(h.cfg.JWT))

	mod.GET("/pending", h.moderationHTTP.ListPending)
	mod.POST("/:kind/:contentID/decide", h.moderationHTTP.Decide)
}
