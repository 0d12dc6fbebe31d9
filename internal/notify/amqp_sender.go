package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSender publishes messages to a durable RabbitMQ queue consumed by
// the messaging gateway. Delivery happens later, so Send reports
// StatusScheduled.
type AMQPSender struct {
	url   string
	queue string
}

func NewAMQPSender(url, queue string) *AMQPSender {
	return &AMQPSender{url: url, queue: queue}
}

func (s *AMQPSender) Send(ctx context.Context, msg Message) (Status, error) {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return "", err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return "", err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		s.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return "", err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(msg.Kind),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		s.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return "", err
	}

	return StatusScheduled, nil
}
