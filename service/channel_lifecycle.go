package service

import (
	"context"
	"time"

	"channelpool/domain"
	"channelpool/helpers"
	"channelpool/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc/connectivity"
)

// maxConnectAttempts is the number of failed connect attempts after which creation gives up.
const maxConnectAttempts = 3

// channelLifecycle opens channels and waits for them to become Ready. A failed attempt on a
// discovery-based service re-resolves the endpoint and moves to the newly selected instance.
type channelLifecycle struct {
	factory        interfaces.ChannelFactory
	connectTimeout time.Duration
	resolve        func(cfg domain.ServiceClientConfig) (string, error)
	clock          clockwork.Clock
	metrics        *Metrics
	logger         log.Logger
}

func newChannelLifecycle(
	factory interfaces.ChannelFactory,
	connectTimeout time.Duration,
	resolve func(cfg domain.ServiceClientConfig) (string, error),
	clock clockwork.Clock,
	metrics *Metrics,
	logger log.Logger,
) *channelLifecycle {
	return &channelLifecycle{
		factory:        helpers.NilPanic(factory, "service.channel_lifecycle.go: factory is required"),
		connectTimeout: helpers.DurationPanic(connectTimeout, "service.channel_lifecycle.go: connect timeout must be positive"),
		resolve:        helpers.NilPanic(resolve, "service.channel_lifecycle.go: resolve is required"),
		clock:          helpers.NilPanic(clock, "service.channel_lifecycle.go: clock is required"),
		metrics:        helpers.NilPanic(metrics, "service.channel_lifecycle.go: metrics is required"),
		logger:         log.With(helpers.NilPanic(logger, "service.channel_lifecycle.go: logger is required"), "component", "channel_lifecycle"),
	}
}

// create opens a channel to endpoint and waits up to connectTimeout per attempt for Ready.
// Failed attempts 1 and 2 are logged; for non-direct configs each one re-resolves the endpoint
// and, when a different instance is selected, replaces the channel. The third failure ends
// creation.
//
// Returns: (entry, nil) with a Ready channel; (nil, *ChannelCreationError) after maxConnectAttempts
// failures; (nil, err) when re-resolution fails (ErrNoHealthyEndpoints, ErrDiscoveryFailed).
//
// Called from channelPool.getOrCreateChannel inside the registry's per-address flight.
func (l *channelLifecycle) create(endpoint string, cfg domain.ServiceClientConfig) (*pooledChannel, error) {
	var (
		ch       interfaces.Channel
		lastErr  error
		attempts int
	)
	for {
		if ch == nil {
			opened, err := l.factory.NewChannel(endpoint, cfg.ChannelOptions)
			if err != nil {
				lastErr = err
			} else {
				ch = opened
			}
		}
		if ch != nil {
			lastErr = l.connect(ch)
			if lastErr == nil {
				l.metrics.channelCreations.WithLabelValues(resultSuccess).Inc()
				return &pooledChannel{
					address:              endpoint,
					discoveryServiceName: discoveryNameOf(cfg),
					channel:              ch,
					createdAt:            l.clock.Now(),
				}, nil
			}
		}
		attempts++
		l.metrics.connectFailures.Inc()
		state := stateOf(ch)
		if attempts >= maxConnectAttempts {
			l.discard(ch, endpoint)
			l.metrics.channelCreations.WithLabelValues(resultFailure).Inc()
			return nil, &ChannelCreationError{
				ServiceName: cfg.ServiceName,
				Endpoint:    endpoint,
				Attempts:    attempts,
				LastState:   state,
				Err:         lastErr,
			}
		}
		level.Warn(l.logger).Log(
			"msg", "channel connect attempt failed",
			"service", cfg.ServiceName,
			"endpoint", endpoint,
			"attempt", attempts,
			"state", state,
			"err", lastErr,
		)
		if cfg.UseDirect {
			continue
		}
		next, err := l.resolve(cfg)
		if err != nil {
			l.discard(ch, endpoint)
			l.metrics.channelCreations.WithLabelValues(resultFailure).Inc()
			return nil, err
		}
		if next != endpoint {
			level.Info(l.logger).Log("msg", "failing over to another endpoint", "service", cfg.ServiceName, "from", endpoint, "to", next)
			l.discard(ch, endpoint)
			ch = nil
			endpoint = next
		}
	}
}

func (l *channelLifecycle) connect(ch interfaces.Channel) error {
	ctx, cancel := context.WithTimeout(context.Background(), l.connectTimeout)
	defer cancel()
	return ch.WaitForReady(ctx)
}

func discoveryNameOf(cfg domain.ServiceClientConfig) string {
	if cfg.UseDirect {
		return ""
	}
	return cfg.DiscoveryServiceName
}

func stateOf(ch interfaces.Channel) connectivity.State {
	if ch == nil {
		return connectivity.Shutdown
	}
	return ch.GetState()
}

// discard closes a channel that never became Ready. A close error is logged only.
func (l *channelLifecycle) discard(ch interfaces.Channel, endpoint string) {
	if ch == nil {
		return
	}
	if err := ch.Close(); err != nil {
		level.Warn(l.logger).Log("msg", "close channel failed", "endpoint", endpoint, "err", err)
	}
}
