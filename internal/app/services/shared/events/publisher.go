package events

import (
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher announces content changes on a fanout exchange so every running
// site instance receives its own copy.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *logrus.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewPublisher declares the durable exchange and enables publisher confirms.
func NewPublisher(conn *amqp.Connection, exchange string, log *logrus.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := declareExchange(ch, exchange); err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

var _ contracts.EventPublisher = (*Publisher)(nil)

// PublishContentChanged publishes the event persistently and waits for the broker to confirm it.
func (p *Publisher) PublishContentChanged(ctx context.Context, event *models.ContentChangedEvent) error {
	p.log.WithFields(logrus.Fields{
		constvars.LoggingDeployIDKey:  event.DeployID,
		constvars.LoggingQueueNameKey: p.exchange,
	}).Info("Publisher.PublishContentChanged called")

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, "", false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.exchange)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.exchange)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	return ch.ExchangeDeclare(
		exchange,            // name
		amqp.ExchangeFanout, // kind
		true,                // durable
		false,               // autoDelete
		false,               // internal
		false,               // noWait
		nil,                 // args
	)
}
