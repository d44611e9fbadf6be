package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petconnect-api/config"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	tel, err := New(context.Background(), config.Otel{Enabled: true}, "test")
	require.NoError(t, err)
	assert.False(t, tel.Enabled(), "no endpoint means no exporter")
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSampleRate(t *testing.T) {
	assert.Equal(t, defaultSampleRate, sampleRate(0))
	assert.Equal(t, defaultSampleRate, sampleRate(1.5))
	assert.Equal(t, 0.5, sampleRate(0.5))
}
