package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/logger"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/cashlink/cashlink/services/fees"
	"github.com/cashlink/cashlink/services/rides"
)

type rideUC struct {
	cfg          *models.Config
	feeStructure models.FeeStructure
	rideRepo     rides.RideRepo
	locationRepo rides.LocationRepo
	rideGW       rides.RideGW
}

// NewRideUC creates a new ride booking use case
func NewRideUC(
	cfg *models.Config,
	feeStructure models.FeeStructure,
	rideRepo rides.RideRepo,
	locationRepo rides.LocationRepo,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:          cfg,
		feeStructure: feeStructure,
		rideRepo:     rideRepo,
		locationRepo: locationRepo,
		rideGW:       rideGW,
	}
}

// Request creates a pending booking for the authenticated customer
func (uc *rideUC) Request(ctx context.Context, actorID uuid.UUID, req models.CreateRideRequest) (*models.RideBooking, error) {
	if req.DriverID == uuid.Nil {
		return nil, fmt.Errorf("%w: driver_id is required", apperrors.ErrConstraintViolation)
	}
	if req.Fare < 0 || req.Distance < 0 {
		return nil, fmt.Errorf("%w: fare and distance must not be negative", apperrors.ErrConstraintViolation)
	}

	customerID := actorID
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}

	distance := req.Distance
	if distance == 0 && req.Pickup != nil && req.Dropoff != nil {
		distance = utils.CalculateDistance(
			utils.GeoPoint{Latitude: req.Pickup.Latitude, Longitude: req.Pickup.Longitude},
			utils.GeoPoint{Latitude: req.Dropoff.Latitude, Longitude: req.Dropoff.Longitude},
		)
	}

	booking := &models.RideBooking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		DriverID:      req.DriverID,
		Status:        models.RideStatusPending,
		Fare:          req.Fare,
		Distance:      distance,
		PaymentStatus: models.RidePaymentUnpaid,
		CreatedAt:     models.Now(),
	}

	if err := uc.rideRepo.Create(ctx, booking); err != nil {
		logger.Error("Failed to create ride booking",
			logger.String("driver_id", req.DriverID.String()),
			logger.ErrorField(err))
		return nil, err
	}

	uc.publishUpdate(ctx, booking)
	logger.Info("Ride booking requested",
		logger.String("ride_id", booking.ID.String()),
		logger.String("driver_id", booking.DriverID.String()))
	return booking, nil
}

// Get retrieves a booking by ID
func (uc *rideUC) Get(ctx context.Context, id uuid.UUID) (*models.RideBooking, error) {
	return uc.rideRepo.Get(ctx, id)
}

// Accept moves a pending booking to accepted
func (uc *rideUC) Accept(ctx context.Context, id uuid.UUID) (*models.RideBooking, error) {
	return uc.transition(ctx, id, models.RideStatusAccepted, uc.rideRepo.MarkAccepted)
}

// StartRide moves an accepted booking to in_progress
func (uc *rideUC) StartRide(ctx context.Context, id uuid.UUID) (*models.RideBooking, error) {
	return uc.transition(ctx, id, models.RideStatusInProgress, uc.rideRepo.MarkStarted)
}

// Reject records a driver's rejection of a pending request
func (uc *rideUC) Reject(ctx context.Context, id uuid.UUID) (*models.RideBooking, error) {
	return uc.transition(ctx, id, models.RideStatusRejected, uc.rideRepo.MarkRejected)
}

// Complete finishes an in_progress ride: marks it paid, settles the
// payout fee on the fare and stores the optional driver rating.
func (uc *rideUC) Complete(ctx context.Context, id uuid.UUID, driverRating *float64) (*models.RideBooking, error) {
	booking, err := uc.guardedGet(ctx, id, models.RideStatusCompleted)
	if err != nil {
		return nil, err
	}
	if driverRating != nil && (*driverRating < 1 || *driverRating > 5) {
		return nil, fmt.Errorf("%w: driver rating must be between 1 and 5", apperrors.ErrConstraintViolation)
	}

	quote := fees.Calculate(booking.Fare, uc.feeStructure, "", "ride_fare")

	if err := uc.rideRepo.MarkCompleted(ctx, id, quote.Fee, driverRating); err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publishUpdate(ctx, updated)

	logger.Info("Ride completed",
		logger.String("ride_id", id.String()),
		logger.Float64("fare", updated.Fare),
		logger.Float64("service_fee", updated.ServiceFee))
	return updated, nil
}

// Cancel voids a pending or accepted booking
func (uc *rideUC) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.RideBooking, error) {
	booking, err := uc.guardedGet(ctx, id, models.RideStatusCancelled)
	if err != nil {
		return nil, err
	}

	if err := uc.rideRepo.MarkCancelled(ctx, booking.ID, reason); err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publishUpdate(ctx, updated)

	logger.Info("Ride cancelled",
		logger.String("ride_id", id.String()),
		logger.String("reason", reason))
	return updated, nil
}

// guardedGet loads a booking and validates the transition to the target
// status against the booking state machine.
func (uc *rideUC) guardedGet(ctx context.Context, id uuid.UUID, to models.RideStatus) (*models.RideBooking, error) {
	booking, err := uc.rideRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(booking.Status, to) {
		return nil, apperrors.InvalidTransition(string(booking.Status), string(to))
	}
	return booking, nil
}

func (uc *rideUC) transition(
	ctx context.Context,
	id uuid.UUID,
	to models.RideStatus,
	mark func(ctx context.Context, id uuid.UUID) error,
) (*models.RideBooking, error) {
	if _, err := uc.guardedGet(ctx, id, to); err != nil {
		return nil, err
	}
	if err := mark(ctx, id); err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.publishUpdate(ctx, updated)

	logger.Info("Ride status changed",
		logger.String("ride_id", id.String()),
		logger.String("status", string(updated.Status)))
	return updated, nil
}

// publishUpdate pushes a live update for the booking. Events carry the
// id and status only so clients always refetch the booking.
func (uc *rideUC) publishUpdate(ctx context.Context, booking *models.RideBooking) {
	event := models.RideUpdateEvent{
		RideID:     booking.ID,
		DriverID:   booking.DriverID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status,
		Timestamp:  models.Now(),
	}
	if err := uc.rideGW.PublishRideUpdate(ctx, event); err != nil {
		logger.Warn("Failed to publish ride update",
			logger.String("ride_id", booking.ID.String()),
			logger.ErrorField(err))
	}
}

// SetDriverAvailability toggles a driver in the availability index
func (uc *rideUC) SetDriverAvailability(ctx context.Context, driverID uuid.UUID, req models.DriverAvailabilityRequest) error {
	if !req.Available {
		return uc.locationRepo.SetUnavailable(ctx, driverID.String())
	}

	return uc.locationRepo.SetAvailable(ctx, models.DriverPosition{
		DriverID:  driverID.String(),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: models.Now(),
	})
}

// NearbyDrivers lists available drivers around a point using the
// configured search radius.
func (uc *rideUC) NearbyDrivers(ctx context.Context, latitude, longitude float64) ([]models.DriverPosition, error) {
	radius := uc.cfg.Rides.SearchRadiusKm
	if radius <= 0 {
		radius = 5
	}
	return uc.locationRepo.NearbyDrivers(ctx, latitude, longitude, radius)
}
