package handler

import (
	"github.com/cashlink/cashlink/internal/pkg/models"
	natspkg "github.com/cashlink/cashlink/internal/pkg/nats"
	"github.com/cashlink/cashlink/internal/pkg/websocket"
	"github.com/cashlink/cashlink/services/rides"
	httpHandler "github.com/cashlink/cashlink/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP  *httpHandler.RidesHandler
	wsManager  *websocket.Manager
	natsClient *natspkg.Client
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	rideUC rides.RideUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ridesHTTP:  httpHandler.NewRidesHandler(rideUC),
		wsManager:  websocket.NewManager(cfg.JWT),
		natsClient: natsClient,
		cfg:        cfg,
	}
}
