package domain

import "time"

const (
	// DefaultEndpointCacheTTL is how long a discovered endpoint set is reused before discovery is asked again.
	DefaultEndpointCacheTTL = 10 * time.Second
	// DefaultConnectTimeout bounds a single attempt to bring a channel to Ready.
	DefaultConnectTimeout = time.Second
)

// PoolConfig holds the process-wide settings of a channel pool.
type PoolConfig struct {
	DefaultDiscoveryURL string
	EndpointCacheTTL    time.Duration
	ConnectTimeout      time.Duration
}

// WithDefaults returns a copy where zero durations are replaced by the package defaults.
func (c PoolConfig) WithDefaults() PoolConfig {
	if c.EndpointCacheTTL <= 0 {
		c.EndpointCacheTTL = DefaultEndpointCacheTTL
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	return c
}

// PoolStats is a point-in-time view of a pool.
type PoolStats struct {
	PooledChannels     int
	CachedEndpointSets int
}

// BalancerType names a built-in load balancer.
type BalancerType string

const (
	BalancerRoundRobin BalancerType = "round_robin"
	BalancerRandom     BalancerType = "random"
)
