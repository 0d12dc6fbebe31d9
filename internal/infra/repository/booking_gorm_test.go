package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func seed(t *testing.T, gdb *gorm.DB) (*models.Barbershop, *models.Customer) {
	t.Helper()

	shop := &models.Barbershop{
		Name:  "Barbería El Estilo",
		Slug:  "barberia-el-estilo",
		Slots: []string{"09:00", "10:00", "11:00"},
	}
	require.NoError(t, gdb.Create(shop).Error)

	customer := &models.Customer{FirstName: "Juan", LastName: "Pérez", Phone: "1122334455"}
	require.NoError(t, gdb.Create(customer).Error)

	return shop, customer
}

func reservation(shop *models.Barbershop, c *models.Customer, date, hm string) *models.Reservation {
	return &models.Reservation{
		BarbershopID: shop.ID,
		CustomerID:   c.ID,
		Date:         date,
		Time:         hm,
		Services:     "corte",
		Confirmed:    true,
	}
}

func TestCreateReservationUniqueSlot(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-10", "10:00")))

	err := repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-10", "10:00"))
	require.ErrorIs(t, err, booking.ErrSlotTaken)

	// other time, other day and other shop are independent
	require.NoError(t, repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-10", "11:00")))
	require.NoError(t, repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-11", "10:00")))

	other := &models.Barbershop{Name: "Otra", Slug: "otra"}
	require.NoError(t, gdb.Create(other).Error)
	require.NoError(t, repo.CreateReservation(ctx, reservation(other, customer, "2030-06-10", "10:00")))
}

func TestDeleteReservationTwice(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	res := reservation(shop, customer, "2030-06-10", "09:00")
	require.NoError(t, repo.CreateReservation(ctx, res))

	require.NoError(t, repo.DeleteReservation(ctx, shop.ID, res.ID))
	assert.ErrorIs(t, repo.DeleteReservation(ctx, shop.ID, res.ID), booking.ErrNotFound)
}

func TestDeleteReservationOfOtherShop(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	res := reservation(shop, customer, "2030-06-10", "09:00")
	require.NoError(t, repo.CreateReservation(ctx, res))

	assert.ErrorIs(t, repo.DeleteReservation(ctx, shop.ID+1, res.ID), booking.ErrNotFound)

	_, err := repo.GetReservation(ctx, shop.ID, res.ID)
	assert.NoError(t, err)
}

func TestListReservedTimes(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-10", "11:00")))
	require.NoError(t, repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-10", "09:00")))
	require.NoError(t, repo.CreateReservation(ctx, reservation(shop, customer, "2030-06-11", "10:00")))

	times, err := repo.ListReservedTimes(ctx, shop.ID, "2030-06-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, times)

	times, err = repo.ListReservedTimes(ctx, shop.ID, "2030-06-12")
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestListReservationsRange(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	for _, r := range []*models.Reservation{
		reservation(shop, customer, "2030-06-12", "09:00"),
		reservation(shop, customer, "2030-06-10", "11:00"),
		reservation(shop, customer, "2030-06-10", "09:00"),
		reservation(shop, customer, "2030-06-20", "09:00"),
	} {
		require.NoError(t, repo.CreateReservation(ctx, r))
	}

	out, err := repo.ListReservations(ctx, shop.ID, "2030-06-10", "2030-06-12")
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "2030-06-10", out[0].Date)
	assert.Equal(t, "09:00", out[0].Time)
	assert.Equal(t, "11:00", out[1].Time)
	assert.Equal(t, "2030-06-12", out[2].Date)
	require.NotNil(t, out[0].Customer)
	assert.Equal(t, "Juan", out[0].Customer.FirstName)
}

func TestClaimReminder(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	res := reservation(shop, customer, "2030-06-10", "09:00")
	require.NoError(t, repo.CreateReservation(ctx, res))

	claimed, err := repo.ClaimReminder(ctx, shop.ID, res.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	got, err := repo.GetReservation(ctx, shop.ID, res.ID)
	require.NoError(t, err)
	assert.True(t, got.ReminderSent)

	claimed, err = repo.ClaimReminder(ctx, shop.ID, res.ID)
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, repo.ReleaseReminder(ctx, shop.ID, res.ID))
	claimed, err = repo.ClaimReminder(ctx, shop.ID, res.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	_, err = repo.ClaimReminder(ctx, shop.ID, res.ID+100)
	assert.ErrorIs(t, err, booking.ErrNotFound)
	_, err = repo.ClaimReminder(ctx, shop.ID+100, res.ID)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestUpdateBarbershop(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, _ := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	shop.Name = "El Estilo"
	shop.Slug = "otro-slug"
	shop.Slots = []string{"10:00", "18:30"}
	shop.Prices = map[string]float64{"corte": 6000}
	require.NoError(t, repo.UpdateBarbershop(ctx, shop))

	got, err := repo.GetBarbershopByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "El Estilo", got.Name)
	assert.Equal(t, "barberia-el-estilo", got.Slug)
	assert.Equal(t, []string{"10:00", "18:30"}, got.Slots)
	assert.Equal(t, 6000.0, got.Prices["corte"])

	missing := &models.Barbershop{ID: shop.ID + 100, Name: "Nadie"}
	assert.ErrorIs(t, repo.UpdateBarbershop(ctx, missing), booking.ErrNotFound)
}

func TestCustomerLookupAndRename(t *testing.T) {
	gdb := dbtest.Open(t)
	_, customer := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	found, err := repo.FindCustomerByPhone(ctx, "1122334455")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.ID)

	found.FirstName = "Juana"
	require.NoError(t, repo.UpdateCustomerName(ctx, found))

	again, err := repo.FindCustomerByPhone(ctx, "1122334455")
	require.NoError(t, err)
	assert.Equal(t, "Juana", again.FirstName)

	_, err = repo.FindCustomerByPhone(ctx, "0000000000")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestBarbershopSlotsRoundTrip(t *testing.T) {
	gdb := dbtest.Open(t)
	shop, _ := seed(t, gdb)
	repo := NewBookingGormRepository(gdb)

	got, err := repo.GetBarbershopBySlug(context.Background(), "barberia-el-estilo")
	require.NoError(t, err)
	assert.Equal(t, shop.ID, got.ID)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, got.Slots)

	_, err = repo.GetBarbershopBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
