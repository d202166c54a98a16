package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the status of a money transfer transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// ConfirmationState is the dual sign-off state derived from the two
// per-party confirmation flags. It is never stored, always computed.
type ConfirmationState string

const (
	ConfirmationAwaitingBoth     ConfirmationState = "awaiting_both"
	ConfirmationAwaitingCustomer ConfirmationState = "awaiting_customer"
	ConfirmationAwaitingAgent    ConfirmationState = "awaiting_agent"
	ConfirmationBothConfirmed    ConfirmationState = "both_confirmed"
)

// ConfirmationOf derives the dual sign-off state from the stored flags.
func ConfirmationOf(customerConfirmed, agentConfirmed bool) ConfirmationState {
	switch {
	case customerConfirmed && agentConfirmed:
		return ConfirmationBothConfirmed
	case customerConfirmed:
		return ConfirmationAwaitingAgent
	case agentConfirmed:
		return ConfirmationAwaitingCustomer
	default:
		return ConfirmationAwaitingBoth
	}
}

// Transaction represents a money transfer transaction between a customer
// and an agent
type Transaction struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	CustomerID        uuid.UUID         `json:"customer_id" db:"customer_id"`
	AgentID           uuid.UUID         `json:"agent_id" db:"agent_id"`
	Amount            float64           `json:"amount" db:"amount"`
	Currency          string            `json:"currency" db:"currency"`
	FeeAmount         float64           `json:"fee_amount" db:"fee_amount"`
	FeePercentage     float64           `json:"fee_percentage" db:"fee_percentage"`
	Network           string            `json:"network" db:"network"`
	ServiceType       string            `json:"service_type" db:"service_type"`
	Status            TransactionStatus `json:"status" db:"status"`
	CustomerConfirmed bool              `json:"customer_confirmed" db:"customer_confirmed"`
	AgentConfirmed    bool              `json:"agent_confirmed" db:"agent_confirmed"`
	Notes             *string           `json:"notes,omitempty" db:"notes"`
	CreatedDate       time.Time         `json:"created_date" db:"created_date"`
	ConfirmedAt       *time.Time        `json:"confirmed_at,omitempty" db:"confirmed_at"`

	// Joined profile display fields, populated on reads only
	CustomerName  string `json:"customer_name,omitempty" db:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty" db:"customer_phone"`
	AgentName     string `json:"agent_name,omitempty" db:"agent_name"`
	AgentPhone    string `json:"agent_phone,omitempty" db:"agent_phone"`
}

// Confirmation returns the derived dual sign-off state of the transaction.
func (t *Transaction) Confirmation() ConfirmationState {
	return ConfirmationOf(t.CustomerConfirmed, t.AgentConfirmed)
}

// TransactionFilter holds equality filters for listing transactions.
// OrderBy accepts a column name, prefixed with '-' for descending.
type TransactionFilter struct {
	CustomerID  *uuid.UUID
	AgentID     *uuid.UUID
	Status      *TransactionStatus
	Network     *string
	ServiceType *string
	OrderBy     string
	Limit       int
}

// TransactionPatch is a partial update applied with last-write-wins
// semantics. Nil fields are left untouched.
type TransactionPatch struct {
	Amount        *float64           `json:"amount,omitempty"`
	FeeAmount     *float64           `json:"fee_amount,omitempty"`
	FeePercentage *float64           `json:"fee_percentage,omitempty"`
	Network       *string            `json:"network,omitempty"`
	ServiceType   *string            `json:"service_type,omitempty"`
	Status        *TransactionStatus `json:"status,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
}

// BreakdownEntry aggregates transactions for one service type or network
type BreakdownEntry struct {
	Count   int     `json:"count"`
	Volume  float64 `json:"volume"`
	Revenue float64 `json:"revenue"`
}

// DailyStat is one day of the trailing seven day series
type DailyStat struct {
	Day     string  `json:"day"`
	Count   int     `json:"count"`
	Volume  float64 `json:"volume"`
	Revenue float64 `json:"revenue"`
}

// TransactionPeriodStats aggregates an agent's transactions over a period
type TransactionPeriodStats struct {
	TotalTransactions int                       `json:"total_transactions"`
	Completed         int                       `json:"completed"`
	Pending           int                       `json:"pending"`
	AwaitingCustomer  int                       `json:"awaiting_customer"`
	AwaitingAgent     int                       `json:"awaiting_agent"`
	TotalVolume       float64                   `json:"total_volume"`
	TotalRevenue      float64                   `json:"total_revenue"`
	UniqueCustomers   int                       `json:"unique_customers"`
	AverageAmount     float64                   `json:"average_amount"`
	AverageFee        float64                   `json:"average_fee"`
	SuccessRate       string                    `json:"success_rate"`
	ByService         map[string]BreakdownEntry `json:"by_service"`
	ByNetwork         map[string]BreakdownEntry `json:"by_network"`
	Daily             []DailyStat               `json:"daily"`
}

// AllTimeTotals are unscoped totals returned alongside period stats
type AllTimeTotals struct {
	TotalTransactions int     `json:"total_transactions" db:"total_transactions"`
	TotalVolume       float64 `json:"total_volume" db:"total_volume"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
}

// AgentStats is the full stats payload for an agent dashboard
type AgentStats struct {
	AgentID     uuid.UUID              `json:"agent_id"`
	Period      string                 `json:"period"`
	PeriodStats TransactionPeriodStats `json:"period_stats"`
	AllTime     AllTimeTotals          `json:"all_time"`
}
