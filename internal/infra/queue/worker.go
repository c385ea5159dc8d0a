package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

// ContactDelivery is where the worker forwards consumed messages, usually the SMTP sender.
type ContactDelivery interface {
	SendContact(ctx context.Context, msg entity.ContactMessage) error
}

type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel  Consumer
	Delivery ContactDelivery
	Logger   *zap.Logger
}

func NewWorker(ch Consumer, delivery ContactDelivery, logger *zap.Logger) *Worker {
	return &Worker{
		Channel:  ch,
		Delivery: delivery,
		Logger:   logger,
	}
}

// Start consumes queueName until ctx is done or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register RabbitMQ consumer: %w", err)
	}

	w.Logger.Info("contact worker waiting", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("contact worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", queueName)
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var msg entity.ContactMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		w.Logger.Error("malformed contact message", zap.Error(err))
		d.Nack(false, false)
		return
	}

	if err := w.Delivery.SendContact(ctx, msg); err != nil {
		w.Logger.Error("contact delivery failed",
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
		// no requeue, the message lands in the DLQ
		d.Nack(false, false)
		return
	}

	w.Logger.Info("contact message delivered", zap.String("message_id", msg.ID))
	d.Ack(false)
}
