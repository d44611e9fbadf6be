package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petconnect-api/config"
)

func TestEvent_JSONAndRoutingKey(t *testing.T) {
	e := NewEvent("product", "stock_updated", "p-1", "u-1")

	assert.Equal(t, "product.stock_updated", e.RoutingKey())

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"event_id", "time_stamp", "entity", "action", "entity_id", "actor_id"} {
		assert.Contains(t, m, k)
	}
}

func TestEvent_ActorOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(NewEvent("user", "registered", "u-1", ""))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "actor_id")
}

func TestPublish_Buffers(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	r.Publish(context.Background(), NewEvent("pet", "created", "p-1", "u-1"))

	require.Len(t, r.in, 1)
	got := <-r.in
	assert.Equal(t, "pet.created", got.RoutingKey())
}

func TestPublish_CancelledContextDoesNotBlock(t *testing.T) {
	r := &RabbitMQ{log: zap.NewNop(), in: make(chan Event)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.Publish(ctx, NewEvent("pet", "deleted", "p-1", "u-1"))
	assert.Len(t, r.in, 0)
}
