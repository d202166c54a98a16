package rides

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
)

// RideGW defines the interface for publishing ride booking events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cashlink/cashlink/services/rides RideGW
type RideGW interface {
	PublishRideUpdate(ctx context.Context, event models.RideUpdateEvent) error
}
