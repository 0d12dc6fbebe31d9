package barbershop

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	DefaultSlotDurationMin = 45
	maxSlotDurationMin     = 480
)

// DefaultSlots is the schedule a new barbershop starts with.
func DefaultSlots() []string {
	return []string{
		"09:00", "10:00", "11:00", "12:00",
		"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
	}
}

// Update is a partial configuration change; nil fields are kept. The slug
// is not part of it: shared links must keep working.
type Update struct {
	Name            *string
	Address         *string
	Phone           *string
	Notice          *string
	Prices          map[string]float64
	EnabledServices []string
	Slots           []string
	SlotDurationMin *int
	Timezone        *string
}

// Apply validates u and writes it into shop.
func Apply(shop *models.Barbershop, u Update) error {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return booking.Invalid("name_required")
		}
		shop.Name = name
	}
	if u.Address != nil {
		shop.Address = strings.TrimSpace(*u.Address)
	}
	if u.Phone != nil {
		shop.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Notice != nil {
		shop.Notice = *u.Notice
	}

	if u.Prices != nil {
		prices := make(map[string]float64, len(u.Prices))
		for k, p := range u.Prices {
			if !booking.ServiceKind(k).Known() {
				return booking.Invalid("unknown_service")
			}
			if p < 0 {
				return booking.Invalid("invalid_price")
			}
			prices[k] = p
		}
		shop.Prices = prices
	}

	if u.EnabledServices != nil {
		enabled := make([]string, 0, len(u.EnabledServices))
		for _, s := range u.EnabledServices {
			if !booking.ServiceKind(s).Togglable() {
				return booking.Invalid("service_not_togglable")
			}
			enabled = append(enabled, s)
		}
		shop.EnabledServices = enabled
	}

	if u.Slots != nil {
		slots, err := booking.NormalizeSlots(u.Slots)
		if err != nil {
			return err
		}
		shop.Slots = slots
	}

	if u.SlotDurationMin != nil {
		if *u.SlotDurationMin <= 0 || *u.SlotDurationMin > maxSlotDurationMin {
			return booking.Invalid("invalid_slot_duration")
		}
		shop.SlotDurationMin = *u.SlotDurationMin
	}

	if u.Timezone != nil {
		if !timezone.IsValid(*u.Timezone) {
			return booking.Invalid("invalid_timezone")
		}
		shop.Timezone = *u.Timezone
	}

	return nil
}
