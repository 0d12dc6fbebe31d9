package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, classify(err, "get barbershop", false)
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, classify(err, "get barbershop by slug", false)
	}
	return &shop, nil
}

func (r *BookingGormRepository) UpdateBarbershop(
	ctx context.Context,
	shop *models.Barbershop,
) error {
	tx := r.db.WithContext(ctx).
		Model(shop).
		Select("*").
		Omit("ID", "Slug", "CreatedAt").
		Updates(shop)
	if tx.Error != nil {
		return classify(tx.Error, "update barbershop", false)
	}
	if tx.RowsAffected == 0 {
		return classify(gorm.ErrRecordNotFound, "update barbershop", false)
	}
	return nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) FindCustomerByPhone(
	ctx context.Context,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("id ASC").
		First(&customer).Error; err != nil {
		return nil, classify(err, "find customer", false)
	}
	return &customer, nil
}

func (r *BookingGormRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return classify(r.db.WithContext(ctx).Create(c).Error, "create customer", false)
}

func (r *BookingGormRepository) UpdateCustomerName(
	ctx context.Context,
	c *models.Customer,
) error {
	err := r.db.WithContext(ctx).
		Model(c).
		Updates(map[string]any{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
		}).Error
	return classify(err, "update customer", false)
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *BookingGormRepository) ListReservedTimes(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("barbershop_id = ? AND slot_date = ?", barbershopID, date).
		Order("slot_time ASC").
		Pluck("slot_time", &times).Error; err != nil {
		return nil, classify(err, "list reserved times", false)
	}
	return times, nil
}

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(res).Error
	return classify(err, "create reservation", true)
}

func (r *BookingGormRepository) GetReservation(
	ctx context.Context,
	barbershopID uint,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&res).Error; err != nil {
		return nil, classify(err, "get reservation", false)
	}
	return &res, nil
}

func (r *BookingGormRepository) DeleteReservation(
	ctx context.Context,
	barbershopID uint,
	id uint,
) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.Reservation{})
	if tx.Error != nil {
		return classify(tx.Error, "delete reservation", false)
	}
	if tx.RowsAffected == 0 {
		return classify(gorm.ErrRecordNotFound, "delete reservation", false)
	}
	return nil
}

func (r *BookingGormRepository) ListReservations(
	ctx context.Context,
	barbershopID uint,
	fromDate string,
	toDate string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"barbershop_id = ? AND slot_date >= ? AND slot_date <= ?",
			barbershopID, fromDate, toDate,
		).
		Order("slot_date ASC").
		Order("slot_time ASC").
		Find(&out).Error; err != nil {
		return nil, classify(err, "list reservations", false)
	}
	return out, nil
}

func (r *BookingGormRepository) ClaimReminder(
	ctx context.Context,
	barbershopID uint,
	id uint,
) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND barbershop_id = ? AND reminder_sent = ?", id, barbershopID, false).
		Update("reminder_sent", true)
	if tx.Error != nil {
		return false, classify(tx.Error, "claim reminder", false)
	}
	if tx.RowsAffected == 1 {
		return true, nil
	}

	// nothing updated: either gone or already claimed
	if _, err := r.GetReservation(ctx, barbershopID, id); err != nil {
		return false, err
	}
	return false, nil
}

func (r *BookingGormRepository) ReleaseReminder(
	ctx context.Context,
	barbershopID uint,
	id uint,
) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Update("reminder_sent", false).Error; err != nil {
		return classify(err, "release reminder", false)
	}
	return nil
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
