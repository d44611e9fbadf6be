package mq

import (
	"context"

	"go.uber.org/zap"
)

// Nop is used when no broker is configured; events only reach the debug log.
type Nop struct {
	log *zap.Logger
}

func NewNop(logger *zap.Logger) *Nop { return &Nop{log: logger} }

func (n *Nop) Publish(_ context.Context, e Event) {
	n.log.Debug("audit event",
		zap.String("routing_key", e.RoutingKey()),
		zap.String("entity_id", e.EntityID),
		zap.String("actor_id", e.ActorID),
	)
}
