package interfaces

import "channelpool/domain"

// ChannelPool hands out ready channels by logical service name.
//
// GetChannel resolves the service config, picks an endpoint (directly or through discovery,
// endpoint cache and load balancer) and returns the pooled channel for it, creating or
// recreating the channel when needed. Shutdown closes every pooled channel and forgets all
// cached endpoints; the pool stays usable and behaves like a freshly built one afterwards.
//
// Implemented by service.channelPool. Called by client code that builds gRPC stubs and by cmd.
//
//go:generate moq -stub -out mock/channel_pool.go -pkg mock . ChannelPool
type ChannelPool interface {
	// GetChannel returns a Ready channel to one instance of serviceName.
	// Returns: (channel, nil) on success; (nil, err) where err matches service.ErrConfigNotFound, service.ErrNoHealthyEndpoints, service.ErrDiscoveryFailed or service.ErrChannelCreationFailed.
	GetChannel(serviceName string) (Channel, error)

	// Shutdown closes all pooled channels and clears the endpoint cache. Idempotent.
	Shutdown()

	// Stats returns the number of pooled channels and cached endpoint sets.
	Stats() domain.PoolStats
}
