package mq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sitekit-io/sitekit/internal/config"
	"go.uber.org/zap"
)

func New(cfg *config.Config) (*amqp.Connection, error) {
	if cfg.RabbitMQ.URL == "" {
		return nil, errors.New("rabbitmq.url is empty")
	}
	return amqp.DialConfig(cfg.RabbitMQ.URL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
}

// Publisher sends JSON messages to one durable topic exchange.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, log: log}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, data any) error {
	body, err := sonic.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", routingKey, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return err
	}

	p.log.Debug("published", zap.String("exchange", p.exchange), zap.String("routing_key", routingKey), zap.Int("bytes", len(body)))
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
