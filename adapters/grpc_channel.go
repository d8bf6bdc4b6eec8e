package adapters

import (
	"context"
	"errors"
	"fmt"

	"channelpool/domain"
	"channelpool/interfaces"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

var errChannelShutdown = errors.New("channel is shut down")

// NewGRPCChannelFactory creates an interfaces.ChannelFactory backed by grpc.NewClient. Channels
// use insecure transport credentials unless base carries its own (later options win).
//
// Parameter base — dial options applied to every channel before the per-service ChannelOptions (TLS credentials, interceptors, stats handlers).
//
// Returns: interfaces.ChannelFactory (*grpcChannelFactory).
//
// Called from cmd when building the pool.
func NewGRPCChannelFactory(base ...grpc.DialOption) interfaces.ChannelFactory {
	return &grpcChannelFactory{base: base}
}

type grpcChannelFactory struct {
	base []grpc.DialOption
}

// NewChannel creates a lazily connecting channel to endpoint. The endpoint is dialed verbatim
// (passthrough resolver); endpoint selection already happened in the pool.
//
// Returns: (interfaces.Channel, nil); (nil, error) when grpc rejects the target or options.
//
// Called from service.channelLifecycle.create.
func (f *grpcChannelFactory) NewChannel(endpoint string, opts domain.ChannelOptions) (interfaces.Channel, error) {
	conn, err := grpc.NewClient("passthrough:///"+endpoint, f.dialOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client for %s: %w", endpoint, err)
	}
	return &grpcChannel{ClientConn: conn, endpoint: endpoint}, nil
}

func (f *grpcChannelFactory) dialOptions(opts domain.ChannelOptions) []grpc.DialOption {
	out := make([]grpc.DialOption, 0, len(f.base)+5)
	out = append(out, grpc.WithTransportCredentials(insecure.NewCredentials()))
	out = append(out, f.base...)
	if opts.Authority != "" {
		out = append(out, grpc.WithAuthority(opts.Authority))
	}
	if opts.UserAgent != "" {
		out = append(out, grpc.WithUserAgent(opts.UserAgent))
	}
	var callOpts []grpc.CallOption
	if opts.MaxRecvMsgSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallRecvMsgSize(opts.MaxRecvMsgSize))
	}
	if opts.MaxSendMsgSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallSendMsgSize(opts.MaxSendMsgSize))
	}
	if len(callOpts) > 0 {
		out = append(out, grpc.WithDefaultCallOptions(callOpts...))
	}
	if opts.KeepaliveTime > 0 || opts.KeepaliveTimeout > 0 || opts.PermitWithoutStream {
		out = append(out, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                opts.KeepaliveTime,
			Timeout:             opts.KeepaliveTimeout,
			PermitWithoutStream: opts.PermitWithoutStream,
		}))
	}
	return out
}

// grpcChannel adapts *grpc.ClientConn to interfaces.Channel. Invoke, NewStream, GetState and
// Close come from the embedded connection.
type grpcChannel struct {
	*grpc.ClientConn
	endpoint string
}

// Target returns the endpoint without the resolver scheme.
func (c *grpcChannel) Target() string {
	return c.endpoint
}

// WaitForReady kicks an idle connection and follows state changes until Ready, Shutdown or ctx is done.
func (c *grpcChannel) WaitForReady(ctx context.Context) error {
	for {
		state := c.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return fmt.Errorf("channel to %s: %w", c.endpoint, errChannelShutdown)
		case connectivity.Idle:
			c.Connect()
		}
		if !c.WaitForStateChange(ctx, state) {
			return fmt.Errorf("channel to %s not ready, state %s: %w", c.endpoint, state, ctx.Err())
		}
	}
}
