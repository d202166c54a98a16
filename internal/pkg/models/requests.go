package models

import "github.com/google/uuid"

// CreateTransactionRequest is the payload for creating a transaction.
// CustomerID defaults to the authenticated caller when omitted; Status is
// passed through as given, callers conventionally start at "pending".
type CreateTransactionRequest struct {
	CustomerID  *uuid.UUID        `json:"customer_id,omitempty"`
	AgentID     uuid.UUID         `json:"agent_id"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency,omitempty"`
	FeeAmount   *float64          `json:"fee_amount,omitempty"`
	Network     string            `json:"network"`
	ServiceType string            `json:"service_type"`
	Status      TransactionStatus `json:"status,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// CancelRequest carries the reason for a cancellation
type CancelRequest struct {
	Reason string `json:"reason"`
}

// CompleteTransactionRequest marks a settlement, optionally forced by an
// admin regardless of confirmation state
type CompleteTransactionRequest struct {
	Force bool `json:"force,omitempty"`
}

// Coordinate is a latitude/longitude pair on a ride request
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateRideRequest is the payload for requesting a ride booking. When
// distance is omitted but both points are given, the great-circle
// distance between them is used.
type CreateRideRequest struct {
	CustomerID *uuid.UUID  `json:"customer_id,omitempty"`
	DriverID   uuid.UUID   `json:"driver_id"`
	Fare       float64     `json:"fare"`
	Distance   float64     `json:"distance"`
	Pickup     *Coordinate `json:"pickup,omitempty"`
	Dropoff    *Coordinate `json:"dropoff,omitempty"`
}

// CompleteRideRequest finishes a ride, optionally rating the driver
type CompleteRideRequest struct {
	DriverRating *float64 `json:"driver_rating,omitempty"`
}

// ModerationDecisionRequest carries a moderator's decision for one item
type ModerationDecisionRequest struct {
	Status ModerationStatus `json:"status"`
}

// DriverAvailabilityRequest toggles a driver's availability with a position
type DriverAvailabilityRequest struct {
	Available bool    `json:"available"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
