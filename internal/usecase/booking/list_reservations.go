package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 90
)

type ListReservations struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{
		repo: repo,
		now:  time.Now,
	}
}

// ByDate lists one day; an empty date means today in the shop time zone.
func (uc *ListReservations) ByDate(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]dto.ReservationListDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	day := timezone.Today(uc.now(), shop.Timezone)
	if date != "" {
		d, err := domain.ParseDate(date, timezone.Location(shop.Timezone))
		if err != nil {
			return nil, err
		}
		day = d.Format(domain.DateLayout)
	}

	return uc.list(ctx, barbershopID, day, day)
}

// Upcoming lists today and the following days.
func (uc *ListReservations) Upcoming(
	ctx context.Context,
	barbershopID uint,
	days int,
) ([]dto.ReservationListDTO, error) {

	if days <= 0 {
		days = DefaultUpcomingDays
	}
	if days > MaxUpcomingDays {
		return nil, domain.Invalid("invalid_days")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	start := uc.now().In(timezone.Location(shop.Timezone))
	from := start.Format(domain.DateLayout)
	to := start.AddDate(0, 0, days).Format(domain.DateLayout)

	return uc.list(ctx, barbershopID, from, to)
}

func (uc *ListReservations) list(
	ctx context.Context,
	barbershopID uint,
	from string,
	to string,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListReservations(ctx, barbershopID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toListDTO(r))
	}
	return out, nil
}

func toListDTO(r models.Reservation) dto.ReservationListDTO {
	item := dto.ReservationListDTO{
		ID:           r.ID,
		Date:         r.Date,
		Time:         r.Time,
		Services:     serviceNames(domain.SplitServices(r.Services)),
		Confirmed:    r.Confirmed,
		ReminderSent: r.ReminderSent,
		CreatedAt:    r.CreatedAt,
	}
	// legacy rows may carry seconds
	if hm, err := domain.NormalizeTime(r.Time); err == nil {
		item.Time = hm
	}
	if r.Customer != nil {
		item.Customer = dto.CustomerDTO{
			ID:        r.Customer.ID,
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
			Phone:     r.Customer.Phone,
		}
	}
	return item
}

func serviceNames(kinds []domain.ServiceKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
