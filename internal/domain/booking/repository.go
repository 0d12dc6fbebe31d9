package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Repository is the storage port of the booking core. Implementations
// report failures as ErrNotFound, ErrSlotTaken, ErrUnavailable or
// ErrStorage.
type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	UpdateBarbershop(
		ctx context.Context,
		shop *models.Barbershop,
	) error

	// -------- Customer --------
	FindCustomerByPhone(
		ctx context.Context,
		phone string,
	) (*models.Customer, error)

	CreateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	UpdateCustomerName(
		ctx context.Context,
		c *models.Customer,
	) error

	// -------- Reservation --------

	// ListReservedTimes returns the stored time labels of the
	// reservations of a barbershop on date ("YYYY-MM-DD").
	ListReservedTimes(
		ctx context.Context,
		barbershopID uint,
		date string,
	) ([]string, error)

	// CreateReservation is the single atomic insert guarded by the
	// (barbershop, date, time) unique index.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) (*models.Reservation, error)

	DeleteReservation(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) error

	ListReservations(
		ctx context.Context,
		barbershopID uint,
		fromDate string,
		toDate string,
	) ([]models.Reservation, error)

	// ClaimReminder flags the reminder as sent unless it already was.
	// claimed is false when another caller got there first.
	ClaimReminder(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) (claimed bool, err error)

	ReleaseReminder(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) error
}
