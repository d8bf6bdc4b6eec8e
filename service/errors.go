package service

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/connectivity"
)

// ErrConfigNotFound is returned by GetChannel when no client config is registered for the service name.
var ErrConfigNotFound = errors.New("client config not found")

// ErrAmbiguousConfig is returned when more than one client config is registered for the same
// service name. It wraps ErrConfigNotFound: the caller has no usable config either way.
var ErrAmbiguousConfig = fmt.Errorf("%w: ambiguous client config", ErrConfigNotFound)

// ErrInvalidConfig is returned by ServiceConfigStore.Register for configs that fail validation.
var ErrInvalidConfig = errors.New("invalid client config")

// ErrNoHealthyEndpoints is returned when discovery reports no usable instance for a service.
var ErrNoHealthyEndpoints = errors.New("no healthy endpoints")

// ErrDiscoveryFailed wraps errors returned by the discovery backend.
var ErrDiscoveryFailed = errors.New("discovery failed")

// ErrChannelCreationFailed is matched by *ChannelCreationError once the connect attempts are exhausted.
var ErrChannelCreationFailed = errors.New("channel creation failed")

// ChannelCreationError reports a channel that never became Ready. Err is the last transport
// error; LastState is the connectivity state observed after the last attempt.
type ChannelCreationError struct {
	ServiceName string
	Endpoint    string
	Attempts    int
	LastState   connectivity.State
	Err         error
}

func (e *ChannelCreationError) Error() string {
	return fmt.Sprintf("create channel for %s failed after %d attempts, state: %s, endpoint: %s: %v",
		e.ServiceName, e.Attempts, e.LastState, e.Endpoint, e.Err)
}

func (e *ChannelCreationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrChannelCreationFailed) true.
func (e *ChannelCreationError) Is(target error) bool {
	return target == ErrChannelCreationFailed
}
