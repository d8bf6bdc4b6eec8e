package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_registers(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	metrics := NewMetrics(reg)
	metrics.channelCreations.WithLabelValues(resultSuccess).Inc()
	metrics.channelEvictions.WithLabelValues(reasonShutdown).Inc()
	metrics.discoveryRequests.WithLabelValues(resultSuccess).Inc()
	metrics.endpointCacheLookups.WithLabelValues(resultHit).Inc()

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Panics(t, func() { NewMetrics(reg) }, "collectors register once per registry")
}

func TestNewMetrics_nilRegistererIsUnregistered(t *testing.T) {
	a := NewMetrics(nil)
	b := NewMetrics(nil)
	a.channelsActive.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.channelsActive))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.channelsActive))
}
