package booking

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CommitReservationInput struct {
	BarbershopID uint

	FirstName string
	LastName  string
	Phone     string

	Date     string
	Time     string
	Services []string

	RequestID string
}

type CommitReservationResult struct {
	Reservation *models.Reservation
	Services    []domain.ServiceKind
	Total       float64
}

// ======================================================
// USE CASE
// ======================================================

type CommitReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	now    func() time.Time
}

func NewCommitReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *CommitReservation {
	return &CommitReservation{
		repo:   repo,
		audit:  audit,
		notify: notifier,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books one slot. It never retries: ErrSlotTaken means the slot
// is gone and the client has to pick another one.
func (uc *CommitReservation) Execute(
	ctx context.Context,
	in CommitReservationInput,
) (*CommitReservationResult, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Validação (antes de qualquer escrita)
	// --------------------------------------------------
	valid, err := uc.validate(shop, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Cliente (busca por celular, senão cria)
	// --------------------------------------------------
	customer, err := uc.resolveCustomer(ctx, valid.firstName, valid.lastName, valid.phone)
	if err != nil {
		return nil, errors.Wrap(err, "resolve customer")
	}

	// --------------------------------------------------
	// 4️⃣ Insert atômico (índice único barbearia+data+hora)
	// --------------------------------------------------
	res := &models.Reservation{
		BarbershopID: shop.ID,
		CustomerID:   customer.ID,
		Date:         valid.date,
		Time:         valid.time,
		Services:     domain.JoinServices(valid.services),
		Confirmed:    true,
		ReminderSent: false,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: shop.ID,
				Action:       audit.ActionReservationConflict,
				Entity:       "reservation",
				RequestID:    in.RequestID,
				Metadata: map[string]any{
					"date": valid.date,
					"time": valid.time,
				},
			})
		}
		return nil, err
	}
	res.Customer = customer

	// --------------------------------------------------
	// 5️⃣ Auditoria + confirmação (fire-and-forget)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       audit.ActionReservationCreated,
		Entity:       "reservation",
		EntityID:     &res.ID,
		RequestID:    in.RequestID,
	})

	uc.notify.Notify(notify.Message{
		Kind:          notify.KindConfirmation,
		Phone:         customer.Phone,
		BarbershopID:  shop.ID,
		ReservationID: res.ID,
		Body: notify.ConfirmationBody(notify.Details{
			CustomerName: customer.FirstName,
			ShopName:     shop.Name,
			Address:      shop.Address,
			Date:         res.Date,
			Time:         res.Time,
		}),
	})

	return &CommitReservationResult{
		Reservation: res,
		Services:    valid.services,
		Total:       domain.Total(shop, valid.services),
	}, nil
}

type validReservation struct {
	firstName string
	lastName  string
	phone     string
	date      string
	time      string
	services  []domain.ServiceKind
}

func (uc *CommitReservation) validate(
	shop *models.Barbershop,
	in CommitReservationInput,
) (validReservation, error) {

	v := validReservation{
		firstName: strings.TrimSpace(in.FirstName),
		lastName:  strings.TrimSpace(in.LastName),
	}
	if v.firstName == "" {
		return v, domain.Invalid("first_name_required")
	}
	if v.lastName == "" {
		return v, domain.Invalid("last_name_required")
	}

	phone, ok := validators.NormalizePhone(in.Phone)
	if !ok {
		return v, domain.Invalid("invalid_phone")
	}
	v.phone = phone

	loc := timezone.Location(shop.Timezone)
	day, err := domain.ParseDate(in.Date, loc)
	if err != nil {
		return v, err
	}
	v.date = day.Format(domain.DateLayout)
	if v.date < uc.now().In(loc).Format(domain.DateLayout) {
		return v, domain.Invalid("date_in_past")
	}

	hm, err := domain.NormalizeTime(in.Time)
	if err != nil {
		return v, err
	}
	if !domain.HasSlot(shop.Slots, hm) {
		return v, domain.Invalid("time_not_offered")
	}
	v.time = hm

	services, err := domain.ValidateServices(shop, in.Services)
	if err != nil {
		return v, err
	}
	v.services = services

	return v, nil
}

// resolveCustomer finds the customer by phone and refreshes the names
// (last write wins), or creates it. The two steps are not atomic: two
// concurrent first bookings with one phone may create two rows.
func (uc *CommitReservation) resolveCustomer(
	ctx context.Context,
	firstName string,
	lastName string,
	phone string,
) (*models.Customer, error) {

	existing, err := uc.repo.FindCustomerByPhone(ctx, phone)
	switch {
	case err == nil:
		if existing.FirstName != firstName || existing.LastName != lastName {
			existing.FirstName = firstName
			existing.LastName = lastName
			if err := uc.repo.UpdateCustomerName(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	customer := &models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
	if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
