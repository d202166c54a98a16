package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/middleware"
)

// RegisterRoutes registers all ride HTTP routes. The websocket endpoint
// authenticates inside the upgrade handshake instead of the JWT
// middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authed := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))

	authed.POST("", h.ridesHTTP.RequestRide)
	authed.GET("/:rideID", h.ridesHTTP.GetRide)
	authed.POST("/:rideID/accept", h.ridesHTTP.AcceptRide)
	authed.POST("/:rideID/start", h.ridesHTTP.StartRide)
	authed.POST("/:rideID/complete", h.ridesHTTP.CompleteRide)
	authed.POST("/:rideID/cancel", h.ridesHTTP.CancelRide)
	authed.POST("/:rideID/reject", h.ridesHTTP.RejectRide)

	drivers := e.Group("/drivers", middleware.JWTAuthMiddleware(h.cfg.JWT))
	drivers.GET("/:driverID/stats", h.ridesHTTP.GetDriverStats)
	drivers.PUT("/availability", h.ridesHTTP.SetAvailability)
	drivers.GET("/nearby", h.ridesHTTP.NearbyDrivers)

	e.GET("/ws/rides", h.HandleDriverUpdates)
}
