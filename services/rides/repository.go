package rides

import (
	"context"
	"time"

	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/google/uuid"
)

// RideRepo defines the interface for ride booking persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cashlink/cashlink/services/rides RideRepo
type RideRepo interface {
	Create(ctx context.Context, booking *models.RideBooking) error
	Get(ctx context.Context, id uuid.UUID) (*models.RideBooking, error)
	MarkAccepted(ctx context.Context, id uuid.UUID) error
	MarkStarted(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, serviceFee float64, driverRating *float64) error
	MarkCancelled(ctx context.Context, id uuid.UUID, reason string) error
	MarkRejected(ctx context.Context, id uuid.UUID) error
	ListByDriverSince(ctx context.Context, driverID uuid.UUID, since time.Time) ([]*models.RideBooking, error)
	DriverAllTimeTotals(ctx context.Context, driverID uuid.UUID) (*models.DriverAllTimeTotals, error)
}

// LocationRepo defines the interface for the driver availability index
//
//go:generate mockgen -destination=mocks/mock_location.go -package=mocks github.com/cashlink/cashlink/services/rides LocationRepo
type LocationRepo interface {
	SetAvailable(ctx context.Context, position models.DriverPosition) error
	SetUnavailable(ctx context.Context, driverID string) error
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.DriverPosition, error)
}
