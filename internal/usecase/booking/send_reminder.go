package booking

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

var ErrReminderFailed = errors.New("reminder delivery failed")

type SendReminder struct {
	repo   domain.Repository
	sender notify.Sender
	audit  *audit.Dispatcher
}

func NewSendReminder(
	repo domain.Repository,
	sender notify.Sender,
	audit *audit.Dispatcher,
) *SendReminder {
	return &SendReminder{
		repo:   repo,
		sender: sender,
		audit:  audit,
	}
}

// Execute claims the reminder flag, then sends. The owner asked for it
// explicitly, so delivery errors are reported and the claim is undone.
func (uc *SendReminder) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	reservationID uint,
	requestID string,
) (notify.Status, error) {

	res, err := uc.repo.GetReservation(ctx, barbershopID, reservationID)
	if err != nil {
		return "", err
	}
	if res.ReminderSent {
		return "", domain.Invalid("reminder_already_sent")
	}
	if res.Customer == nil {
		return "", fmt.Errorf("reservation %d customer: %w", reservationID, domain.ErrNotFound)
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return "", err
	}

	claimed, err := uc.repo.ClaimReminder(ctx, barbershopID, reservationID)
	if err != nil {
		return "", err
	}
	if !claimed {
		return "", domain.Invalid("reminder_already_sent")
	}

	status, err := uc.sender.Send(ctx, notify.Message{
		Kind:          notify.KindReminder,
		Phone:         res.Customer.Phone,
		BarbershopID:  barbershopID,
		ReservationID: reservationID,
		Body: notify.ReminderBody(notify.Details{
			CustomerName: res.Customer.FirstName,
			ShopName:     shop.Name,
			Address:      shop.Address,
			Date:         res.Date,
			Time:         res.Time,
		}),
	})
	if err != nil {
		if rerr := uc.repo.ReleaseReminder(context.WithoutCancel(ctx), barbershopID, reservationID); rerr != nil {
			log.Printf("[%s] release reminder %d: %v", requestID, reservationID, rerr)
		}
		return "", fmt.Errorf("%w: %w", ErrReminderFailed, err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       audit.ActionReminderSent,
		Entity:       "reservation",
		EntityID:     &reservationID,
		RequestID:    requestID,
		Metadata:     map[string]any{"status": status},
	})

	return status, nil
}
