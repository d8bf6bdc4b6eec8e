package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values.
const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultEmpty   = "empty"
	resultHit     = "hit"
	resultMiss    = "miss"

	reasonNotReady  = "not_ready"
	reasonUnhealthy = "unhealthy"
	reasonShutdown  = "shutdown"
	reasonDuplicate = "duplicate"
)

// Metrics holds the prometheus collectors of one channel pool.
type Metrics struct {
	channelsActive       prometheus.Gauge
	channelCreations     *prometheus.CounterVec
	connectFailures      prometheus.Counter
	channelEvictions     *prometheus.CounterVec
	discoveryRequests    *prometheus.CounterVec
	endpointCacheLookups *prometheus.CounterVec
}

// NewMetrics creates the pool collectors and registers them with reg. A nil reg creates
// unregistered collectors, which is what tests and the CLI use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		channelsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "channelpool_channels_active",
			Help: "Number of channels currently held by the pool",
		}),
		channelCreations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "channelpool_channel_creations_total",
			Help: "Channel creations by result (success, failure)",
		}, []string{"result"}),
		connectFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "channelpool_connect_attempt_failures_total",
			Help: "Connect attempts that did not reach Ready within the attempt deadline",
		}),
		channelEvictions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "channelpool_channel_evictions_total",
			Help: "Channels removed from the pool by reason (not_ready, unhealthy, shutdown, duplicate)",
		}, []string{"reason"}),
		discoveryRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "channelpool_discovery_requests_total",
			Help: "Discovery backend requests by result (success, empty, failure)",
		}, []string{"result"}),
		endpointCacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "channelpool_endpoint_cache_lookups_total",
			Help: "Endpoint cache lookups by result (hit, miss)",
		}, []string{"result"}),
	}
}
