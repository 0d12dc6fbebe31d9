package booking

import (
	"context"
	"log"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

type CancelReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:   repo,
		audit:  audit,
		notify: notifier,
	}
}

// Execute hard-deletes a reservation of the owner's barbershop. Cancelling
// an already deleted reservation reports ErrNotFound.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	reservationID uint,
	requestID string,
) error {

	res, err := uc.repo.GetReservation(ctx, barbershopID, reservationID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteReservation(ctx, barbershopID, reservationID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       audit.ActionReservationCancelled,
		Entity:       "reservation",
		EntityID:     &reservationID,
		RequestID:    requestID,
		Metadata: map[string]any{
			"date": res.Date,
			"time": res.Time,
		},
	})

	if res.Customer == nil {
		return nil
	}
	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		// the reservation is gone, only the courtesy message is lost
		log.Printf("cancel reservation %d: skip notification: %v", reservationID, err)
		return nil
	}
	uc.notify.Notify(notify.Message{
		Kind:          notify.KindCancellation,
		Phone:         res.Customer.Phone,
		BarbershopID:  barbershopID,
		ReservationID: reservationID,
		Body: notify.CancellationBody(notify.Details{
			CustomerName: res.Customer.FirstName,
			ShopName:     shop.Name,
			Address:      shop.Address,
			Date:         res.Date,
			Time:         res.Time,
		}),
	})

	return nil
}
