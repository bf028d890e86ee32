package events

import (
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"context"
	"errors"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler reacts to one content change.
type Handler func(ctx context.Context, event *models.ContentChangedEvent) error

// Consumer binds a private queue to the content exchange and runs every
// registered handler for each event it receives.
type Consumer struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
	handlers []Handler
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewConsumer(conn *amqp.Connection, exchange string, log *zap.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := declareExchange(ch, exchange); err != nil {
		ch.Close()
		return nil, err
	}
	return &Consumer{ch: ch, exchange: exchange, log: log}, nil
}

// OnContentChanged registers handler. Handlers must be registered before Start.
func (c *Consumer) OnContentChanged(handler Handler) {
	c.handlers = append(c.handlers, handler)
}

func (c *Consumer) Start(ctx context.Context) error {
	queue, err := c.ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // autoDelete
		true,  // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, c.exchange)
	}

	if err := c.ch.QueueBind(queue.Name, "", c.exchange, false, nil); err != nil {
		return exceptions.ErrRabbitMQConsume(err, c.exchange)
	}

	deliveries, err := c.ch.Consume(queue.Name, "", false, true, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, queue.Name)
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		for {
			select {
			case <-runCtx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					c.log.Warn("Consumer delivery channel closed",
						zap.String(constvars.LoggingQueueNameKey, queue.Name),
					)
					return
				}
				c.process(runCtx, delivery)
			}
		}
	}()

	c.log.Info("Consumer started",
		zap.String(constvars.LoggingQueueNameKey, queue.Name),
	)
	return nil
}

func (c *Consumer) Stop() {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	c.ch.Close()
}

func (c *Consumer) process(ctx context.Context, delivery amqp.Delivery) {
	requestID := utils.GenerateRequestID(constvars.REQUEST_ID_PREFIX)
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	if err := c.Handle(ctx, delivery.Body); err != nil {
		c.log.Error("Consumer failed to handle content change",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}
	delivery.Ack(false)
}

// Handle decodes one event body and runs every handler, returning their joined errors.
func (c *Consumer) Handle(ctx context.Context, body []byte) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var event models.ContentChangedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	c.log.Info("Consumer received content change",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeployIDKey, event.DeployID),
		zap.String(constvars.LoggingDocumentTypeKey, event.DocumentType),
	)

	var errs []error
	for _, handler := range c.handlers {
		if err := handler(ctx, &event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
