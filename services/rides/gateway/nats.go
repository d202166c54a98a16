package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cashlink/cashlink/internal/pkg/constants"
	"github.com/cashlink/cashlink/internal/pkg/models"
	natspkg "github.com/cashlink/cashlink/internal/pkg/nats"
	"github.com/cashlink/cashlink/services/rides"
)

// RideGW handles NATS publishing for ride booking events
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
	}
}

// PublishRideUpdate publishes a live update on the driver's subject
func (g *RideGW) PublishRideUpdate(ctx context.Context, event models.RideUpdateEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(constants.SubjectRideUpdates, event.DriverID.String())
	return g.natsClient.Publish(subject, data)
}
