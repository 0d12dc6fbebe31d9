package booking

import (
	"context"

	"github.com/cockroachdb/errors"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes free and taken slots of shop on date. It only reads;
// a storage failure is returned as an error and never as an empty day.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	shop *models.Barbershop,
	date string,
) (domain.Availability, error) {

	day, err := domain.ParseDate(date, timezone.Location(shop.Timezone))
	if err != nil {
		return domain.Availability{}, err
	}
	canonical := day.Format(domain.DateLayout)

	if len(shop.Slots) == 0 {
		return domain.ComputeAvailability(canonical, nil, nil), nil
	}

	reserved, err := uc.repo.ListReservedTimes(ctx, shop.ID, canonical)
	if err != nil {
		return domain.Availability{}, errors.Wrapf(err, "availability of barbershop %d on %s", shop.ID, canonical)
	}

	return domain.ComputeAvailability(canonical, shop.Slots, reserved), nil
}
