package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

const sendTimeout = 10 * time.Second

// Dispatcher sends messages in the background. Notify never blocks and
// never reports the sender's failure to the caller.
type Dispatcher struct {
	sender Sender
	queue  chan Message
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, buffer),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if _, err := d.sender.Send(ctx, msg); err != nil {
			log.Printf("notify: %s for reservation %d failed: %v", msg.Kind, msg.ReservationID, err)
		}
		cancel()
	}
}

func (d *Dispatcher) Notify(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Printf("notify: queue full, dropping %s for reservation %d", msg.Kind, msg.ReservationID)
	}
}

// Close flushes pending messages.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	d.wg.Wait()
}
