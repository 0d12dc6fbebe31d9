package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	cr "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

const pgUniqueViolation = "23505"

// classify maps a driver error to the booking error kinds by error code.
// Duplicate keys are only reported as ErrSlotTaken when dupIsConflict is
// set, since other tables have unique indexes too.
func classify(err error, op string, dupIsConflict bool) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, booking.ErrNotFound)
	case dupIsConflict && IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, booking.ErrSlotTaken)
	case isTransient(err):
		return fmt.Errorf("%w: %w", booking.ErrUnavailable, cr.Wrap(err, op))
	default:
		return fmt.Errorf("%w: %w", booking.ErrStorage, cr.Wrap(err, op))
	}
}

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) {
		return true
	}
	return pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}
