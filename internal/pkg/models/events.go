package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionEvent is published when a transaction settles or is cancelled
type TransactionEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	CustomerID    uuid.UUID         `json:"customer_id"`
	AgentID       uuid.UUID         `json:"agent_id"`
	Amount        float64           `json:"amount"`
	FeeAmount     float64           `json:"fee_amount"`
	Status        TransactionStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}

// RideUpdateEvent is the live update pushed on every booking change.
// It deliberately carries no booking detail beyond id and status:
// consumers must refetch rather than apply deltas.
type RideUpdateEvent struct {
	RideID     uuid.UUID  `json:"ride_id"`
	DriverID   uuid.UUID  `json:"driver_id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Status     RideStatus `json:"status"`
	Timestamp  time.Time  `json:"timestamp"`
}

// ModerationEvent is published when a moderator decides on a submission
type ModerationEvent struct {
	Kind      ContentKind      `json:"kind"`
	ContentID uuid.UUID        `json:"content_id"`
	Decision  ModerationStatus `json:"decision"`
	Timestamp time.Time        `json:"timestamp"`
}
