package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"petconnect-api/config"
	"petconnect-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// Consumer drains the audit queue into the structured log.
type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection) *Consumer {
	return &Consumer{
		cfg:  cfg,
		log:  logger,
		conn: conn,
	}
}

// Connect dials dsn unless a connection was handed to New.
func (c *Consumer) Connect(dsn string) error {
	if c.conn == nil {
		conn, err := amqp091.Dial(dsn)
		if err != nil {
			return fmt.Errorf("amqp dial: %w", err)
		}
		c.conn = conn
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.chConsume = ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range mq.AuditBindings {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	deliveries, err := c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.chDelivery = deliveries

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			if err := c.delivery(msg); err != nil {
				c.log.Error("mq read message error", zap.Error(err), zap.String("routing_key", msg.RoutingKey))
			}
		case <-ctx.Done():
			_ = c.chConsume.Close()
			return
		}
	}
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	var e mq.Event
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode audit event: %w", err)
	}

	c.log.Info("audit event",
		zap.String("routing_key", msg.RoutingKey),
		zap.Stringer("event_id", e.ID),
		zap.Time("time_stamp", e.TS),
		zap.String("entity", e.Entity),
		zap.String("action", e.Action),
		zap.String("entity_id", e.EntityID),
		zap.String("actor_id", e.ActorID),
	)

	return nil
}
