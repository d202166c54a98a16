package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cashlink/cashlink/internal/pkg/apperrors"
	"github.com/cashlink/cashlink/internal/pkg/models"
)

const rideColumns = `
	id, customer_id, driver_id, status, fare, distance, service_fee,
	driver_rating, payment_status, cancellation_reason,
	created_at, accepted_at, started_at, completed_at, cancelled_at
`

type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a new ride booking
func (r *RideRepo) Create(ctx context.Context, booking *models.RideBooking) error {
	query := `
		INSERT INTO ride_bookings (
			id, customer_id, driver_id, status, fare, distance,
			service_fee, payment_status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.CustomerID,
		booking.DriverID,
		booking.Status,
		booking.Fare,
		booking.Distance,
		booking.ServiceFee,
		booking.PaymentStatus,
		booking.CreatedAt,
	)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// Get retrieves a ride booking by ID
func (r *RideRepo) Get(ctx context.Context, id uuid.UUID) (*models.RideBooking, error) {
	query := "SELECT " + rideColumns + " FROM ride_bookings WHERE id = $1"

	booking := &models.RideBooking{}
	if err := r.db.GetContext(ctx, booking, query, id); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return booking, nil
}

// MarkAccepted moves the booking to accepted and stamps accepted_at once
func (r *RideRepo) MarkAccepted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE ride_bookings
		SET status = $1, accepted_at = COALESCE(accepted_at, $2)
		WHERE id = $3
	`
	return r.exec(ctx, query, models.RideStatusAccepted, time.Now(), id)
}

// MarkStarted moves the booking to in_progress and stamps started_at once
func (r *RideRepo) MarkStarted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE ride_bookings
		SET status = $1, started_at = COALESCE(started_at, $2)
		WHERE id = $3
	`
	return r.exec(ctx, query, models.RideStatusInProgress, time.Now(), id)
}

// MarkCompleted settles the booking: completed status, paid, the payout
// fee and an optional driver rating.
func (r *RideRepo) MarkCompleted(ctx context.Context, id uuid.UUID, serviceFee float64, driverRating *float64) error {
	query := `
		UPDATE ride_bookings
		SET status = $1, payment_status = $2, service_fee = $3,
		    driver_rating = COALESCE($4, driver_rating),
		    completed_at = COALESCE(completed_at, $5)
		WHERE id = $6
	`
	return r.exec(ctx, query,
		models.RideStatusCompleted, models.RidePaymentPaid, serviceFee,
		driverRating, time.Now(), id)
}

// MarkCancelled voids the booking, keeping the reason when one is given
func (r *RideRepo) MarkCancelled(ctx context.Context, id uuid.UUID, reason string) error {
	var reasonArg interface{}
	if reason != "" {
		reasonArg = reason
	}

	query := `
		UPDATE ride_bookings
		SET status = $1, cancellation_reason = $2,
		    cancelled_at = COALESCE(cancelled_at, $3)
		WHERE id = $4
	`
	return r.exec(ctx, query, models.RideStatusCancelled, reasonArg, time.Now(), id)
}

// MarkRejected records a driver's rejection of a pending request
func (r *RideRepo) MarkRejected(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE ride_bookings SET status = $1 WHERE id = $2`
	return r.exec(ctx, query, models.RideStatusRejected, id)
}

// ListByDriverSince retrieves a driver's bookings created on or after the
// cutoff, newest first.
func (r *RideRepo) ListByDriverSince(ctx context.Context, driverID uuid.UUID, since time.Time) ([]*models.RideBooking, error) {
	query := "SELECT " + rideColumns + `
		FROM ride_bookings
		WHERE driver_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`

	bookings := []*models.RideBooking{}
	if err := r.db.SelectContext(ctx, &bookings, query, driverID, since); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return bookings, nil
}

// DriverAllTimeTotals aggregates a driver's completed rides and earnings
// over the whole ledger.
func (r *RideRepo) DriverAllTimeTotals(ctx context.Context, driverID uuid.UUID) (*models.DriverAllTimeTotals, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'completed') AS total_rides,
			COALESCE(SUM(fare) FILTER (WHERE status = 'completed'), 0) AS total_earnings
		FROM ride_bookings
		WHERE driver_id = $1
	`

	totals := &models.DriverAllTimeTotals{}
	if err := r.db.GetContext(ctx, totals, query, driverID); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return totals, nil
}

func (r *RideRepo) exec(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return requireRow(result)
}

// requireRow translates a zero row update into a not found error.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
