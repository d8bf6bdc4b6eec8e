package service

import (
	"fmt"

	"channelpool/domain"
	"channelpool/helpers"
	"channelpool/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/connectivity"
)

// PoolOption customizes a channel pool built by NewChannelPool.
type PoolOption func(*poolOptions)

type poolOptions struct {
	clock   clockwork.Clock
	metrics *Metrics
}

// WithClock sets the clock used for endpoint cache expiry (clockwork fake clock in tests).
func WithClock(clock clockwork.Clock) PoolOption {
	return func(o *poolOptions) { o.clock = clock }
}

// WithMetrics sets the collectors the pool reports to. Without it the pool uses unregistered collectors.
func WithMetrics(metrics *Metrics) PoolOption {
	return func(o *poolOptions) { o.metrics = metrics }
}

// channelPool implements interfaces.ChannelPool. It resolves a service name to an endpoint
// (direct, or endpoint cache + discoverer + balancer) and returns the registry's channel for that
// endpoint, creating or recreating it through channelLifecycle. A real discovery refresh also
// evicts the service's channels whose endpoints are no longer healthy.
type channelPool struct {
	cfg        domain.PoolConfig
	configs    *ServiceConfigStore
	discoverer interfaces.Discoverer
	balancer   interfaces.LoadBalancer
	cache      *endpointCache
	registry   *channelRegistry
	lifecycle  *channelLifecycle
	metrics    *Metrics
	logger     log.Logger
}

// NewChannelPool creates a channel pool. Panics on nil configs, discoverer, balancer, factory or logger.
//
// Parameters: cfg — process-wide settings (zero durations get defaults); configs — registered client configs; discoverer — discovery backend; balancer — endpoint selection; factory — opens transport channels; logger — go-kit logger; opts — clock and metrics overrides.
//
// Returns: interfaces.ChannelPool (*channelPool).
//
// Called from cmd when building the CLI and by applications embedding the pool.
func NewChannelPool(
	cfg domain.PoolConfig,
	configs *ServiceConfigStore,
	discoverer interfaces.Discoverer,
	balancer interfaces.LoadBalancer,
	factory interfaces.ChannelFactory,
	logger log.Logger,
	opts ...PoolOption,
) interfaces.ChannelPool {
	return newChannelPool(cfg, configs, discoverer, balancer, factory, logger, opts...)
}

func newChannelPool(
	cfg domain.PoolConfig,
	configs *ServiceConfigStore,
	discoverer interfaces.Discoverer,
	balancer interfaces.LoadBalancer,
	factory interfaces.ChannelFactory,
	logger log.Logger,
	opts ...PoolOption,
) *channelPool {
	o := poolOptions{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}
	cfg = cfg.WithDefaults()
	logger = log.With(helpers.NilPanic(logger, "service.channel_pool.go: logger is required"), "component", "channel_pool")
	p := &channelPool{
		cfg:        cfg,
		configs:    helpers.NilPanic(configs, "service.channel_pool.go: configs is required"),
		discoverer: helpers.NilPanic(discoverer, "service.channel_pool.go: discoverer is required"),
		balancer:   helpers.NilPanic(balancer, "service.channel_pool.go: balancer is required"),
		cache:      newEndpointCache(cfg.EndpointCacheTTL, o.clock, o.metrics),
		registry:   newChannelRegistry(o.metrics, logger),
		metrics:    o.metrics,
		logger:     logger,
	}
	p.lifecycle = newChannelLifecycle(
		helpers.NilPanic(factory, "service.channel_pool.go: factory is required"),
		cfg.ConnectTimeout,
		p.resolveEndpoint,
		o.clock,
		o.metrics,
		logger,
	)
	return p
}

// GetChannel returns a Ready channel to one instance of serviceName. Direct configs skip
// discovery, the endpoint cache and the balancer.
//
// Returns: (channel, nil); (nil, err) matching ErrConfigNotFound, ErrNoHealthyEndpoints, ErrDiscoveryFailed or ErrChannelCreationFailed.
func (p *channelPool) GetChannel(serviceName string) (interfaces.Channel, error) {
	cfg, err := p.configs.Lookup(serviceName)
	if err != nil {
		return nil, err
	}
	endpoint := cfg.DirectEndpoint
	if !cfg.UseDirect {
		endpoint, err = p.resolveEndpoint(cfg)
		if err != nil {
			return nil, err
		}
	}
	return p.getOrCreateChannel(endpoint, cfg)
}

func (p *channelPool) discoveryURL(cfg domain.ServiceClientConfig) string {
	if cfg.DiscoveryURL != "" {
		return cfg.DiscoveryURL
	}
	return p.cfg.DefaultDiscoveryURL
}

// resolveEndpoint picks one healthy endpoint of cfg's discovery service. The healthy set comes
// from the endpoint cache; on a miss the discoverer is asked and, for the caller that ran that
// fetch only, channels of endpoints missing from the new set are evicted.
//
// Returns: (endpoint, nil); (""; err) matching ErrInvalidConfig (no discovery URL), ErrDiscoveryFailed or ErrNoHealthyEndpoints.
//
// Called from GetChannel and, on failed connect attempts, from channelLifecycle.create.
func (p *channelPool) resolveEndpoint(cfg domain.ServiceClientConfig) (string, error) {
	name := cfg.DiscoveryServiceName
	url := p.discoveryURL(cfg)
	if url == "" {
		return "", fmt.Errorf("%w: service %q has no discovery url and no default is set", ErrInvalidConfig, cfg.ServiceName)
	}
	endpoints, fetched, err := p.cache.getOrFetch(name, func() ([]string, error) {
		found, err := p.discoverer.GetHealthyEndpoints(name, url, cfg.DiscoveryServiceTag)
		if err != nil {
			p.metrics.discoveryRequests.WithLabelValues(resultFailure).Inc()
			return nil, fmt.Errorf("%w: %s: %w", ErrDiscoveryFailed, name, err)
		}
		if len(found) == 0 {
			p.metrics.discoveryRequests.WithLabelValues(resultEmpty).Inc()
		} else {
			p.metrics.discoveryRequests.WithLabelValues(resultSuccess).Inc()
		}
		return found, nil
	})
	if err != nil {
		return "", err
	}
	if len(endpoints) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoHealthyEndpoints, name)
	}
	if fetched {
		p.reconcile(name, endpoints)
	}
	selected := p.balancer.SelectEndpoint(name, endpoints)
	if !helpers.ContainsEndpoint(endpoints, selected) {
		return "", fmt.Errorf("%w: %s: balancer selected %q outside the healthy set", ErrNoHealthyEndpoints, name, selected)
	}
	return selected, nil
}

// reconcile evicts and closes the pooled channels of discoveryServiceName whose endpoint is not in healthy.
func (p *channelPool) reconcile(discoveryServiceName string, healthy []string) {
	for _, pc := range p.registry.evictUnhealthy(discoveryServiceName, healthy) {
		level.Info(p.logger).Log("msg", "evicting channel of unhealthy endpoint", "service", discoveryServiceName, "endpoint", pc.address)
		p.closeChannel(pc, reasonUnhealthy)
	}
}

// getOrCreateChannel returns the registry's channel for endpoint. A pooled channel that is not
// Ready is removed, closed and replaced under the same address. Only Ready channels are returned.
func (p *channelPool) getOrCreateChannel(endpoint string, cfg domain.ServiceClientConfig) (interfaces.Channel, error) {
	create := func() (*pooledChannel, error) {
		return p.lifecycle.create(endpoint, cfg)
	}
	pc, err := p.registry.getOrCreate(endpoint, create)
	if err != nil {
		return nil, err
	}
	if state := pc.channel.GetState(); state != connectivity.Ready {
		if p.registry.remove(pc) {
			level.Info(p.logger).Log("msg", "replacing channel that is not ready", "service", cfg.ServiceName, "endpoint", pc.address, "state", state)
			p.closeChannel(pc, reasonNotReady)
		}
		pc, err = p.registry.getOrCreate(endpoint, create)
		if err != nil {
			return nil, err
		}
		if state := pc.channel.GetState(); state != connectivity.Ready {
			return nil, fmt.Errorf("%w: %s: channel to %s is %s", ErrChannelCreationFailed, cfg.ServiceName, pc.address, state)
		}
	}
	return pc.channel, nil
}

func (p *channelPool) closeChannel(pc *pooledChannel, reason string) {
	p.registry.close(pc, reason)
}

// Shutdown closes every pooled channel concurrently, waits until all closes returned, and
// flushes the endpoint cache so the next GetChannel starts cold. Close errors are logged only.
func (p *channelPool) Shutdown() {
	drained := p.registry.drain()
	var grp errgroup.Group
	for _, pc := range drained {
		grp.Go(func() error {
			p.closeChannel(pc, reasonShutdown)
			return nil
		})
	}
	_ = grp.Wait()
	p.cache.flush()
	if len(drained) > 0 {
		level.Info(p.logger).Log("msg", "channel pool shut down", "closed", len(drained))
	}
}

// Stats returns the number of pooled channels and cached endpoint sets.
func (p *channelPool) Stats() domain.PoolStats {
	return domain.PoolStats{
		PooledChannels:     p.registry.size(),
		CachedEndpointSets: p.cache.count(),
	}
}
