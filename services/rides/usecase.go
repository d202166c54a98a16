package rides

import (
	"context"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/google/uuid"
)

// RideUC defines the interface for ride booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cashlink/cashlink/services/rides RideUC
type RideUC interface {
	Request(ctx context.Context, actorID uuid.UUID, req models.CreateRideRequest) (*models.RideBooking, error)
	Get(ctx context.Context, id uuid.UUID) (*models.RideBooking, error)
	Accept(ctx context.Context, id uuid.UUID) (*models.RideBooking, error)
	StartRide(ctx context.Context, id uuid.UUID) (*models.RideBooking, error)
	Complete(ctx context.Context, id uuid.UUID, driverRating *float64) (*models.RideBooking, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.RideBooking, error)
	Reject(ctx context.Context, id uuid.UUID) (*models.RideBooking, error)
	GetDriverStats(ctx context.Context, driverID uuid.UUID, period string) (*models.DriverStats, error)
	SetDriverAvailability(ctx context.Context, driverID uuid.UUID, req models.DriverAvailabilityRequest) error
	NearbyDrivers(ctx context.Context, latitude, longitude float64) ([]models.DriverPosition, error)
}
