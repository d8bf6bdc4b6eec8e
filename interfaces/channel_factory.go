package interfaces

import "channelpool/domain"

// ChannelFactory opens channels. Opening does not wait for the connection; readiness is
// checked separately through Channel.WaitForReady.
//
// Implemented by adapters.grpcChannelFactory. Called from service.channelLifecycle.create.
//
//go:generate moq -stub -out mock/channel_factory.go -pkg mock . ChannelFactory
type ChannelFactory interface {
	// NewChannel creates a channel to endpoint configured with opts.
	// Returns: (channel, nil) on success; (nil, error) when the target or options are invalid.
	NewChannel(endpoint string, opts domain.ChannelOptions) (Channel, error)
}
