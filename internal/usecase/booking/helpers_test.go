package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// June 1st 2024, 10:00 in Buenos Aires.
var testNow = time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

type testEnv struct {
	db   *gorm.DB
	repo *repository.BookingGormRepository
	shop *models.Barbershop
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	gdb := dbtest.Open(t)
	shop := &models.Barbershop{
		Name:     "Barbería El Estilo",
		Slug:     "barberia-el-estilo",
		Address:  "Av. Siempre Viva 742",
		Prices:   map[string]float64{"corte": 5000, "barba": 2000},
		Slots:    []string{"09:00", "10:00", "11:00"},
		Timezone: "America/Argentina/Buenos_Aires",
	}
	require.NoError(t, gdb.Create(shop).Error)

	return testEnv{
		db:   gdb,
		repo: repository.NewBookingGormRepository(gdb),
		shop: shop,
	}
}

func (e testEnv) commit() *CommitReservation {
	uc := NewCommitReservation(e.repo, nil, nil)
	uc.now = fixedNow
	return uc
}

func (e testEnv) input(first, last, phone, date, hm string) CommitReservationInput {
	return CommitReservationInput{
		BarbershopID: e.shop.ID,
		FirstName:    first,
		LastName:     last,
		Phone:        phone,
		Date:         date,
		Time:         hm,
		Services:     []string{"corte"},
	}
}

func (e testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

// --------------------------------------------------
// mocks
// --------------------------------------------------

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg notify.Message) (notify.Status, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(notify.Status), args.Error(1)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	args := m.Called(ctx, id)
	shop, _ := args.Get(0).(*models.Barbershop)
	return shop, args.Error(1)
}

func (m *mockRepository) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	args := m.Called(ctx, slug)
	shop, _ := args.Get(0).(*models.Barbershop)
	return shop, args.Error(1)
}

func (m *mockRepository) UpdateBarbershop(ctx context.Context, shop *models.Barbershop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *mockRepository) FindCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	args := m.Called(ctx, phone)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *mockRepository) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) UpdateCustomerName(ctx context.Context, c *models.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) ListReservedTimes(ctx context.Context, barbershopID uint, date string) ([]string, error) {
	args := m.Called(ctx, barbershopID, date)
	times, _ := args.Get(0).([]string)
	return times, args.Error(1)
}

func (m *mockRepository) CreateReservation(ctx context.Context, r *models.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepository) GetReservation(ctx context.Context, barbershopID uint, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, barbershopID, id)
	r, _ := args.Get(0).(*models.Reservation)
	return r, args.Error(1)
}

func (m *mockRepository) DeleteReservation(ctx context.Context, barbershopID uint, id uint) error {
	return m.Called(ctx, barbershopID, id).Error(0)
}

func (m *mockRepository) ListReservations(ctx context.Context, barbershopID uint, from, to string) ([]models.Reservation, error) {
	args := m.Called(ctx, barbershopID, from, to)
	out, _ := args.Get(0).([]models.Reservation)
	return out, args.Error(1)
}

func (m *mockRepository) ClaimReminder(ctx context.Context, barbershopID uint, id uint) (bool, error) {
	args := m.Called(ctx, barbershopID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ReleaseReminder(ctx context.Context, barbershopID uint, id uint) error {
	return m.Called(ctx, barbershopID, id).Error(0)
}
