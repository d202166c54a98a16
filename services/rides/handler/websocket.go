package handler

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"
	natsio "github.com/nats-io/nats.go"

	"github.com/cashlink/cashlink/internal/pkg/constants"
	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/internal/pkg/websocket"
)

// HandleDriverUpdates upgrades the connection and forwards the driver's
// live booking updates from NATS until the client disconnects. Delivery
// is at-least-once while the connection exists; clients refetch the
// booking on every event.
func (h *Handler) HandleDriverUpdates(c echo.Context) error {
	return h.wsManager.HandleConnection(c, func(client *websocket.Client) error {
		subject := fmt.Sprintf(constants.SubjectRideUpdates, client.UserID)

		sub, err := h.natsClient.Subscribe(subject, func(msg *natsio.Msg) {
			var event models.RideUpdateEvent
			if err := json.Unmarshal(msg.Data, &event); err != nil {
				logger.Warn("Dropping malformed ride update",
					logger.String("subject", subject),
					logger.ErrorField(err))
				return
			}
			h.wsManager.NotifyClient(client.UserID, constants.EventRideUpdate, event)
		})
		if err != nil {
			return err
		}
		defer sub.Unsubscribe()

		logger.Info("Driver subscribed to live updates",
			logger.String("driver_id", client.UserID))

		// Block on the read loop to detect disconnects; inbound frames
		// are ignored.
		for {
			if _, _, err := client.Conn.ReadMessage(); err != nil {
				logger.Info("Driver live update stream closed",
					logger.String("driver_id", client.UserID))
				return nil
			}
		}
	})
}
