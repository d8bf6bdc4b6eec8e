package interfaces

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// Channel is a reusable transport connection to one endpoint. It embeds
// grpc.ClientConnInterface so generated stubs can be built directly on top of it.
//
// Implemented by adapters.grpcChannel (wrapping *grpc.ClientConn).
// Created by ChannelFactory, owned by service.channelRegistry, handed to callers by ChannelPool.GetChannel.
//
//go:generate moq -stub -out mock/channel.go -pkg mock . Channel
type Channel interface {
	grpc.ClientConnInterface

	// Target returns the endpoint the channel was created for.
	Target() string

	// GetState returns the current connectivity state (Idle, Connecting, Ready, TransientFailure, Shutdown).
	GetState() connectivity.State

	// WaitForReady starts connecting if idle and blocks until the channel is Ready or ctx is done.
	// Returns: nil once Ready; error when ctx expires first or the channel is shut down.
	// Called from service.channelLifecycle.create with a per-attempt deadline.
	WaitForReady(ctx context.Context) error

	// Close shuts the channel down. Safe to call more than once.
	Close() error
}
