package notify

import (
	"context"
	"log"
)

// LogSender only logs. It stands in while no messaging gateway is
// configured and reports messages as scheduled.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, msg Message) (Status, error) {
	log.Printf("notify: %s to %s (reservation %d): %q", msg.Kind, msg.Phone, msg.ReservationID, msg.Body)
	return StatusScheduled, nil
}
