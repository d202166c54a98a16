package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/rides/mocks"
)

func ptrFloat(v float64) *float64 { return &v }

func newTestUC(t *testing.T) (*rideUC, *mocks.MockRideRepo, *mocks.MockLocationRepo, *mocks.MockRideGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockLocation := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)

	cfg := &models.Config{Rides: models.RidesConfig{SearchRadiusKm: 3}}
	structure := models.FeeStructure{
		"ride_fare": {Percentage: ptrFloat(10)},
	}

	uc := NewRideUC(cfg, structure, mockRepo, mockLocation, mockGW).(*rideUC)
	return uc, mockRepo, mockLocation, mockGW
}

func TestRequestRide_Success(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	actorID := uuid.New()
	driverID := uuid.New()

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.RideBooking) error {
			assert.Equal(t, actorID, b.CustomerID)
			assert.Equal(t, driverID, b.DriverID)
			assert.Equal(t, models.RideStatusPending, b.Status)
			assert.Equal(t, models.RidePaymentUnpaid, b.PaymentStatus)
			return nil
		})
	mockGW.EXPECT().
		PublishRideUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.RideUpdateEvent) error {
			assert.Equal(t, driverID, event.DriverID)
			assert.Equal(t, models.RideStatusPending, event.Status)
			return nil
		})

	booking, err := uc.Request(context.Background(), actorID, models.CreateRideRequest{
		DriverID: driverID,
		Fare:     2500,
		Distance: 4.2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusPending, booking.Status)
}

func TestRequestRide_DistanceFromCoordinates(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	var created *models.RideBooking
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.RideBooking) error {
			created = b
			return nil
		})
	mockGW.EXPECT().PublishRideUpdate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.Request(context.Background(), uuid.New(), models.CreateRideRequest{
		DriverID: uuid.New(),
		Fare:     3000,
		Pickup:   &models.Coordinate{Latitude: 25.0806, Longitude: 55.1403},
		Dropoff:  &models.Coordinate{Latitude: 25.2711, Longitude: 55.3083},
	})
	require.NoError(t, err)
	// Marina to Deira is roughly 27km great-circle
	assert.InDelta(t, 27, created.Distance, 1.5)
}

func TestRequestRide_MissingDriver(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.Request(context.Background(), uuid.New(), models.CreateRideRequest{Fare: 100})
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestAcceptRide_FromPending(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	id := uuid.New()
	pending := &models.RideBooking{ID: id, DriverID: uuid.New(), Status: models.RideStatusPending}
	accepted := &models.RideBooking{ID: id, DriverID: pending.DriverID, Status: models.RideStatusAccepted}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(pending, nil)
	mockRepo.EXPECT().MarkAccepted(gomock.Any(), id).Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(accepted, nil)
	mockGW.EXPECT().PublishRideUpdate(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.Accept(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, booking.Status)
}

func TestAcceptRide_RejectedWhenAlreadyAccepted(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.RideBooking{ID: id, Status: models.RideStatusAccepted}, nil)

	_, err := uc.Accept(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestStartRide_RequiresAccepted(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.RideBooking{ID: id, Status: models.RideStatusPending}, nil)

	_, err := uc.StartRide(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestCompleteRide_SettlesPayoutFee(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	id := uuid.New()
	inProgress := &models.RideBooking{
		ID:       id,
		DriverID: uuid.New(),
		Status:   models.RideStatusInProgress,
		Fare:     2000,
	}
	completed := &models.RideBooking{
		ID:            id,
		DriverID:      inProgress.DriverID,
		Status:        models.RideStatusCompleted,
		Fare:          2000,
		ServiceFee:    200,
		PaymentStatus: models.RidePaymentPaid,
	}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(inProgress, nil)
	// 10% of the 2000 fare from the ride_fare rule
	mockRepo.EXPECT().MarkCompleted(gomock.Any(), id, 200.0, ptrFloat(4.5)).Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(completed, nil)
	mockGW.EXPECT().PublishRideUpdate(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.Complete(context.Background(), id, ptrFloat(4.5))
	require.NoError(t, err)
	assert.Equal(t, models.RidePaymentPaid, booking.PaymentStatus)
	assert.Equal(t, 200.0, booking.ServiceFee)
}

func TestCompleteRide_RequiresInProgress(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.RideBooking{ID: id, Status: models.RideStatusAccepted}, nil)

	_, err := uc.Complete(context.Background(), id, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestCompleteRide_RatingOutOfRange(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.RideBooking{ID: id, Status: models.RideStatusInProgress}, nil)

	_, err := uc.Complete(context.Background(), id, ptrFloat(5.5))
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestCancelRide_FromAccepted(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	id := uuid.New()
	accepted := &models.RideBooking{ID: id, DriverID: uuid.New(), Status: models.RideStatusAccepted}
	cancelled := &models.RideBooking{ID: id, DriverID: accepted.DriverID, Status: models.RideStatusCancelled}

	mockRepo.EXPECT().Get(gomock.Any(), id).Return(accepted, nil)
	mockRepo.EXPECT().MarkCancelled(gomock.Any(), id, "driver too far").Return(nil)
	mockRepo.EXPECT().Get(gomock.Any(), id).Return(cancelled, nil)
	mockGW.EXPECT().PublishRideUpdate(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.Cancel(context.Background(), id, "driver too far")
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, booking.Status)
}

func TestCancelRide_RejectedWhenInProgress(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.RideBooking{ID: id, Status: models.RideStatusInProgress}, nil)

	_, err := uc.Cancel(context.Background(), id, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRejectRide_OnlyFromPending(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id).
		Return(&models.RideBooking{ID: id, Status: models.RideStatusCompleted}, nil)

	_, err := uc.Reject(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestSetDriverAvailability_Toggle(t *testing.T) {
	uc, _, mockLocation, _ := newTestUC(t)

	driverID := uuid.New()

	mockLocation.EXPECT().
		SetAvailable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos models.DriverPosition) error {
			assert.Equal(t, driverID.String(), pos.DriverID)
			assert.Equal(t, -1.28, pos.Latitude)
			return nil
		})

	err := uc.SetDriverAvailability(context.Background(), driverID, models.DriverAvailabilityRequest{
		Available: true,
		Latitude:  -1.28,
		Longitude: 36.82,
	})
	require.NoError(t, err)

	mockLocation.EXPECT().SetUnavailable(gomock.Any(), driverID.String()).Return(nil)
	err = uc.SetDriverAvailability(context.Background(), driverID, models.DriverAvailabilityRequest{Available: false})
	require.NoError(t, err)
}

func TestNearbyDrivers_UsesConfiguredRadius(t *testing.T) {
	uc, _, mockLocation, _ := newTestUC(t)

	mockLocation.EXPECT().
		NearbyDrivers(gomock.Any(), -1.28, 36.82, 3.0).
		Return([]models.DriverPosition{{DriverID: "d1"}}, nil)

	drivers, err := uc.NearbyDrivers(context.Background(), -1.28, 36.82)
	require.NoError(t, err)
	assert.Len(t, drivers, 1)
}
