package rmqconsumer

import (
	"encoding/json"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"petconnect-api/config"
	"petconnect-api/internal/infrastructure/mq"
)

func Test_delivery_Table(t *testing.T) {
	petCreated := mq.NewEvent("pet", "created", "pet-1", "user-1")
	body, err := json.Marshal(petCreated)
	require.NoError(t, err)

	cases := []struct {
		name    string
		msg     amqp091.Delivery
		wantErr bool
		fields  map[string]any
	}{
		{
			name: "pet created",
			msg:  amqp091.Delivery{RoutingKey: petCreated.RoutingKey(), Body: body},
			fields: map[string]any{
				"routing_key": "pet.created",
				"entity":      "pet",
				"action":      "created",
				"entity_id":   "pet-1",
				"actor_id":    "user-1",
			},
		},
		{
			name:    "garbage body",
			msg:     amqp091.Delivery{RoutingKey: "pet.created", Body: []byte("{")},
			wantErr: true,
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			c := &Consumer{log: zap.New(core)}

			err := c.delivery(tt.msg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, logs.Len())
				return
			}
			require.NoError(t, err)

			entries := logs.FilterMessage("audit event").All()
			require.Len(t, entries, 1)
			got := entries[0].ContextMap()
			for k, v := range tt.fields {
				assert.Equal(t, v, got[k], "field %q", k)
			}
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
