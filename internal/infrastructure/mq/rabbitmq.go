package mq

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"petconnect-api/config"
)

const bufferSize = 128

// Routing keys the audit queue is bound to.
var AuditBindings = []string{"user.*", "pet.*", "product.*", "service.*"}

type (
	InputCh  = chan Event
	RabbitMQ struct {
		cfg   config.MQ
		log   *zap.Logger
		conn  *amqp091.Connection
		pubCh *amqp091.Channel
		in    InputCh
	}
	// Event is an audit record of a successful mutation.
	Event struct {
		ID       uuid.UUID `json:"event_id"`
		TS       time.Time `json:"time_stamp"`
		Entity   string    `json:"entity"`
		Action   string    `json:"action"`
		EntityID string    `json:"entity_id"`
		ActorID  string    `json:"actor_id,omitempty"`
	}
)

func NewEvent(entity, action, entityID, actorID string) Event {
	return Event{
		ID:       uuid.New(),
		TS:       time.Now().UTC(),
		Entity:   entity,
		Action:   action,
		EntityID: entityID,
		ActorID:  actorID,
	}
}

func (e Event) RoutingKey() string { return e.Entity + "." + e.Action }

func New(cfg config.MQ, logger *zap.Logger) *RabbitMQ {
	return &RabbitMQ{
		cfg: cfg,
		log: logger,
		in:  make(chan Event, bufferSize),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	amqpCfg := amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": "petconnectapi",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	}

	var err error
	r.conn, err = amqp091.DialConfig(dsn, amqpCfg)
	if err != nil {
		return err
	}
	r.pubCh, err = r.conn.Channel()
	if err != nil {
		_ = r.conn.Close()
		return err
	}

	r.log.Info("rabbitmq connected successfully")

	return nil
}

func (r *RabbitMQ) Init() error {
	if err := r.pubCh.ExchangeDeclare(
		r.cfg.Exchange,
		r.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = r.pubCh.Close()
		return err
	}
	q, err := r.pubCh.QueueDeclare(
		r.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	for _, rk := range AuditBindings {
		if err = r.pubCh.QueueBind(q.Name, rk, r.cfg.Exchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}

// Publish hands e to the publisher worker. It never blocks past ctx.
func (r *RabbitMQ) Publish(ctx context.Context, e Event) {
	select {
	case r.in <- e:
	case <-ctx.Done():
		r.log.Warn("audit event dropped", zap.String("routing_key", e.RoutingKey()), zap.Error(ctx.Err()))
	}
}

func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker")

	defer func() {
		r.log.Info("publisher worker gracefully stopped")
	}()

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				r.log.Error("mq publish error", zap.Error(err), zap.String("routing_key", e.RoutingKey()))
			}
		case <-ctx.Done():
			_ = r.pubCh.Close()
			return
		}
	}
}

func (r *RabbitMQ) publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	pub := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.ID.String(),
		Timestamp:    e.TS,
		Type:         e.RoutingKey(),
		Body:         b,
	}

	return r.pubCh.PublishWithContext(
		ctx,
		r.cfg.Exchange,
		e.RoutingKey(),
		false,
		false,
		pub,
	)
}

func (r *RabbitMQ) GetConn() *amqp091.Connection { return r.conn }
