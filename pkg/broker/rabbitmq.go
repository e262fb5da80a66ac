package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmChannel is the part of *amqp.Channel a Publisher uses once the
// channel is in confirm mode.
type confirmChannel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
	Close() error
}

// Publisher sends JSON events to a topic exchange and waits for the
// broker's publisher confirm.
type Publisher struct {
	conn     *amqp.Connection
	ch       confirmChannel
	exchange string
	log      *zap.Logger
}

func newPublisher(conn *amqp.Connection, ch confirmChannel, exchange string, log *zap.Logger) *Publisher {
	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		log:      log.With(zap.String("exchange", exchange)),
	}
}

func Dial(url, exchange string, log *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	return newPublisher(conn, ch, exchange, log), nil
}

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", routingKey, err)
	}

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("await confirm for %s: %w", routingKey, err)
	}
	if !acked {
		return errors.New("publish NACK from broker")
	}

	p.log.Debug("Event published", zap.String("routing_key", routingKey))
	return nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) PublishJSON(context.Context, string, any) error { return nil }
