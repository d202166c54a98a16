package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user profile as resolved from the identity provider.
// Authentication and session mechanics live outside this service; only the
// display fields joined onto ledger reads are modelled here.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"fullname" db:"fullname"`
	Phone     string    `json:"phone" db:"phone"`
	Role      string    `json:"role" db:"role"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Roles known to the service
const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
	RoleDriver   = "driver"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)
