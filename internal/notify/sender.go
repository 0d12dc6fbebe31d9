// Package notify delivers customer messages (WhatsApp/SMS gateways sit
// behind a queue). Booking flows use the Dispatcher so a failing sender
// never fails or slows a reservation.
package notify

import "context"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
)

type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindReminder     Kind = "reminder"
	KindCancellation Kind = "cancellation"
)

type Message struct {
	Kind          Kind   `json:"kind"`
	Phone         string `json:"phone"`
	Body          string `json:"body"`
	BarbershopID  uint   `json:"barbershop_id"`
	ReservationID uint   `json:"reservation_id"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) (Status, error)
}
