package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride booking
type RideStatus string

const (
	RideStatusPending    RideStatus = "pending"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
	RideStatusRejected   RideStatus = "rejected"
)

// rideTransitions maps each status to the statuses reachable from it.
// cancelled, rejected and completed are absorbing.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusPending:    {RideStatusAccepted, RideStatusRejected, RideStatusCancelled},
	RideStatusAccepted:   {RideStatusInProgress, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to RideStatus) bool {
	for _, next := range rideTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PaymentStatus values for ride bookings
const (
	RidePaymentUnpaid = "unpaid"
	RidePaymentPaid   = "paid"
)

// RideBooking represents a ride booking between a customer and a driver
type RideBooking struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	CustomerID         uuid.UUID  `json:"customer_id" db:"customer_id"`
	DriverID           uuid.UUID  `json:"driver_id" db:"driver_id"`
	Status             RideStatus `json:"status" db:"status"`
	Fare               float64    `json:"fare" db:"fare"`
	Distance           float64    `json:"distance" db:"distance"` // km
	ServiceFee         float64    `json:"service_fee" db:"service_fee"`
	DriverRating       *float64   `json:"driver_rating,omitempty" db:"driver_rating"`
	PaymentStatus      string     `json:"payment_status" db:"payment_status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	AcceptedAt         *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	StartedAt          *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// RidePeriodStats aggregates a driver's bookings over a period
type RidePeriodStats struct {
	TotalRequests  int         `json:"total_requests"`
	Accepted       int         `json:"accepted"`
	InProgress     int         `json:"in_progress"`
	Completed      int         `json:"completed"`
	Cancelled      int         `json:"cancelled"`
	Rejected       int         `json:"rejected"`
	AcceptanceRate string      `json:"acceptance_rate"`
	CompletionRate string      `json:"completion_rate"`
	TotalEarnings  float64     `json:"total_earnings"`
	TotalDistance  float64     `json:"total_distance"`
	AverageRating  float64     `json:"average_rating"`
	Daily          []DailyStat `json:"daily"`
}

// DriverAllTimeTotals are unscoped totals for a driver
type DriverAllTimeTotals struct {
	TotalRides    int     `json:"total_rides" db:"total_rides"`
	TotalEarnings float64 `json:"total_earnings" db:"total_earnings"`
}

// DriverStats is the full stats payload for a driver dashboard
type DriverStats struct {
	DriverID    uuid.UUID           `json:"driver_id"`
	Period      string              `json:"period"`
	PeriodStats RidePeriodStats     `json:"period_stats"`
	AllTime     DriverAllTimeTotals `json:"all_time"`
}

// DriverPosition is a driver's last reported location
type DriverPosition struct {
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Geohash    string    `json:"geohash"`
	DistanceKm float64   `json:"distance_km,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
