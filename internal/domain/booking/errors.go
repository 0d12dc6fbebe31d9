package booking

import (
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	// ErrValidation marks malformed input rejected before any storage call.
	ErrValidation = errors.New("invalid input")
	// ErrSlotTaken is the (barbershop, date, time) uniqueness violation.
	// It is terminal: callers pick another slot instead of retrying.
	ErrSlotTaken = errors.New("slot already reserved")
	ErrNotFound  = errors.New("not found")
	// ErrUnavailable is a connectivity or timeout failure of the store.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrStorage is any other storage failure (schema, permission, ...).
	ErrStorage = errors.New("storage failure")
)

// Invalid returns a validation error carrying a machine readable code.
func Invalid(code string) error {
	return fmt.Errorf("%w: %w", ErrValidation, httperr.ErrBusiness(code))
}

// Code extracts the business code of err, or "" when it has none.
func Code(err error) string {
	return httperr.CodeOf(err)
}
