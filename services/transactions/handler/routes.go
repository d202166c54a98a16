package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/middleware"
)

// RegisterRoutes registers all transaction HTTP routes. Everything is
// behind JWT auth; settlement with force additionally checks the admin
// role inside the handler.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authed := e.Group("/transactions", middleware.JWTAuthMiddleware(h.cfg.JWT))

	authed.POST("", h.txHTTP.CreateTransaction)
	authed.GET("", h.txHTTP.ListTransactions)
	authed.GET("/:transactionID", h.txHTTP.GetTransaction)
	authed.PATCH("/:transactionID", h.txHTTP.UpdateTransaction)
	authed.POST("/:transactionID/confirm/agent", h.txHTTP.AgentConfirm)
	authed.POST("/:transactionID/confirm/customer", h.txHTTP.CustomerConfirm)
	authed.POST("/:transactionID/complete", h.txHTTP.CompleteTransaction)
	authed.POST("/:transactionID/cancel", h.txHTTP.CancelTransaction)

	stats := e.Group("/agents", middleware.JWTAuthMiddleware(h.cfg.JWT))
	stats.GET("/:agentID/stats", h.txHTTP.GetAgentStats)
}
