package audit

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	ActionReservationCreated   = "reservation_created"
	ActionReservationConflict  = "reservation_conflict"
	ActionReservationCancelled = "reservation_cancelled"
	ActionReminderSent         = "reminder_sent"
	ActionBarbershopUpdated    = "barbershop_updated"
	ActionOwnerRegistered      = "owner_registered"
)

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	RequestID    string
	Metadata     any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			log.Println("audit error:", err)
		}
		cancel()
	}
}

// Dispatch never blocks the request. A nil dispatcher discards events.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// fila cheia: o audit nunca quebra a API
		log.Println("audit queue full, dropping event", ev.Action)
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	d.wg.Wait()
}
