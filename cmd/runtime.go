package main

import (
	"net/http"
	"time"

	"channelpool/adapters"
	"channelpool/interfaces"
	"channelpool/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
)

// poolRuntime is a channel pool together with what it was built from.
type poolRuntime struct {
	pool    interfaces.ChannelPool
	configs *service.ServiceConfigStore
	closers []func() error
	logger  log.Logger
}

// buildRuntime wires the pool for cfg. reg receives the pool metrics; nil leaves them unregistered.
//
// Returns: (*poolRuntime, nil); (nil, error) when configs do not register or the balancer is unknown.
//
// Called from every command after LoadConfig.
func buildRuntime(cfg *Config, logger log.Logger, reg prometheus.Registerer) (*poolRuntime, error) {
	configs, err := service.NewServiceConfigStore(cfg.Services...)
	if err != nil {
		return nil, err
	}
	balancer, err := service.NewLoadBalancer(cfg.LoadBalancer)
	if err != nil {
		return nil, err
	}
	rt := &poolRuntime{configs: configs, logger: logger}
	var discoverer interfaces.Discoverer
	switch cfg.Backend {
	case backendRedis:
		d := adapters.NewDiscovererRedis(func(redisURL string) (redis.UniversalClient, error) {
			return adapters.NewRedisUniversalClient(redisURL)
		})
		rt.closers = append(rt.closers, d.Close)
		discoverer = d
	default:
		discoverer = adapters.NewDiscovererHTTP(&http.Client{Timeout: 10 * time.Second})
	}
	rt.pool = service.NewChannelPool(
		cfg.Pool,
		configs,
		discoverer,
		balancer,
		adapters.NewGRPCChannelFactory(),
		logger,
		service.WithMetrics(service.NewMetrics(reg)),
	)
	return rt, nil
}

// shutdown closes every pooled channel and the discovery clients.
func (rt *poolRuntime) shutdown() {
	rt.pool.Shutdown()
	for _, closeFn := range rt.closers {
		if err := closeFn(); err != nil {
			level.Warn(rt.logger).Log("msg", "close discovery client failed", "err", err)
		}
	}
}
