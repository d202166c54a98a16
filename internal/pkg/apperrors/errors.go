// Package apperrors defines the error kinds surfaced by the core ledgers.
// Backend specific failures are mapped to these kinds once, at the
// repository boundary, so callers never inspect error strings.
package apperrors

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
)

var (
	// ErrUnauthenticated is returned when an operation requiring a caller
	// identity is invoked without one.
	ErrUnauthenticated = errors.New("caller is not authenticated")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when the backend rejects a write
	// due to a unique or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidTransition is returned when a lifecycle operation is called
	// from a status that is not its expected predecessor.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// postgres error classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// InvalidTransition wraps ErrInvalidTransition with the offending statuses.
func InvalidTransition(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// MapDBError converts backend errors to typed kinds. Errors that match no
// known kind propagate unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
		}
	}
	return err
}
