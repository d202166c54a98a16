package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/rides/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func rideColumns() []string {
	return []string{
		"id", "customer_id", "driver_id", "status", "fare", "distance",
		"service_fee", "driver_rating", "payment_status", "cancellation_reason",
		"created_at", "accepted_at", "started_at", "completed_at", "cancelled_at",
	}
}

func TestCreateBooking_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	b := &models.RideBooking{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		DriverID:      uuid.New(),
		Status:        models.RideStatusPending,
		Fare:          2500,
		Distance:      4.2,
		PaymentStatus: models.RidePaymentUnpaid,
		CreatedAt:     time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_bookings")).
		WithArgs(b.ID, b.CustomerID, b.DriverID, b.Status, b.Fare, b.Distance,
			b.ServiceFee, b.PaymentStatus, b.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery("SELECT").WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	id := uuid.New()
	rows := sqlmock.NewRows(rideColumns()).AddRow(
		id, uuid.New(), uuid.New(), models.RideStatusAccepted, 2500.0, 4.2,
		0.0, nil, models.RidePaymentUnpaid, nil,
		time.Now(), time.Now(), nil, nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ride_bookings")).
		WithArgs(id).
		WillReturnRows(rows)

	booking, err := repo.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, booking.Status)
	assert.NotNil(t, booking.AcceptedAt)
}

func TestMarkAccepted_StampsOnce(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("accepted_at = COALESCE(accepted_at, $2)")).
		WithArgs(models.RideStatusAccepted, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkAccepted(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCompleted_SetsPaidAndFee(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	id := uuid.New()
	rating := 4.5

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_bookings")).
		WithArgs(models.RideStatusCompleted, models.RidePaymentPaid, 250.0,
			rating, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkCompleted(context.Background(), id, 250.0, &rating)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRejected_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_bookings")).
		WithArgs(models.RideStatusRejected, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRejected(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDriverAllTimeTotals(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	driverID := uuid.New()
	rows := sqlmock.NewRows([]string{"total_rides", "total_earnings"}).AddRow(87, 156000.0)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ride_bookings")).
		WithArgs(driverID).
		WillReturnRows(rows)

	totals, err := repo.DriverAllTimeTotals(context.Background(), driverID)
	assert.NoError(t, err)
	assert.Equal(t, 87, totals.TotalRides)
	assert.Equal(t, 156000.0, totals.TotalEarnings)
}
