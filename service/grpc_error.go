package service

import (
	"context"
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const msgServiceNotConfigured = "downstream service is not configured"
const msgServiceUnavailable = "downstream service unavailable"
const msgInternal = "internal error"

// PoolErrorToGRPCUnaryInterceptor returns a unary server interceptor for servers whose handlers
// call ChannelPool.GetChannel: it runs the handler, logs a returned error and maps it with PoolErrorToGRPC.
//
// Parameter logger — logger for "unary handler error" with method and err.
//
// Returns: grpc.UnaryServerInterceptor.
func PoolErrorToGRPCUnaryInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			level.Info(logger).Log(
				"msg", "unary handler error",
				"method", info.FullMethod,
				"err", err,
			)
			return resp, PoolErrorToGRPC(err)
		}
		return resp, nil
	}
}

// PoolErrorToGRPCStreamInterceptor is the streaming counterpart of PoolErrorToGRPCUnaryInterceptor.
func PoolErrorToGRPCStreamInterceptor(logger log.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err != nil {
			level.Info(logger).Log(
				"msg", "stream handler error",
				"method", info.FullMethod,
				"err", err,
			)
			err = PoolErrorToGRPC(err)
		}
		return err
	}
}

// PoolErrorToGRPC maps channel pool errors to gRPC status: nil → nil; ErrConfigNotFound (and
// ErrAmbiguousConfig) → FailedPrecondition; ErrNoHealthyEndpoints, ErrDiscoveryFailed and
// ErrChannelCreationFailed → Unavailable; a gRPC status with code != Unknown is returned as-is;
// anything else → Internal.
//
// Returns: nil if err == nil; otherwise a *status.Status error.
//
// Called from the interceptors above and from cmd when reporting resolution failures.
func PoolErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrConfigNotFound):
		return status.Error(codes.FailedPrecondition, msgServiceNotConfigured)
	case errors.Is(err, ErrNoHealthyEndpoints),
		errors.Is(err, ErrDiscoveryFailed),
		errors.Is(err, ErrChannelCreationFailed):
		return status.Error(codes.Unavailable, msgServiceUnavailable)
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return s.Err()
	}
	return status.Error(codes.Internal, msgInternal)
}
