package service

import (
	"time"

	"channelpool/domain"
	"channelpool/helpers"

	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// endpointCache keeps the last healthy endpoint set per discovery service name for ttl, so
// discovery is asked at most once per name per expiry window. Expiry is judged by clock so
// tests can move time; the go-cache janitor only reclaims memory of long-expired sets.
// Concurrent misses for the same name share one fetch through singleflight.
type endpointCache struct {
	store   *cache.Cache
	clock   clockwork.Clock
	ttl     time.Duration
	flight  singleflight.Group
	metrics *Metrics
}

func newEndpointCache(ttl time.Duration, clock clockwork.Clock, metrics *Metrics) *endpointCache {
	ttl = helpers.DurationPanic(ttl, "service.endpoint_cache.go: ttl must be positive")
	return &endpointCache{
		store:   cache.New(ttl, 2*ttl),
		clock:   helpers.NilPanic(clock, "service.endpoint_cache.go: clock is required"),
		ttl:     ttl,
		metrics: helpers.NilPanic(metrics, "service.endpoint_cache.go: metrics is required"),
	}
}

// get returns the unexpired set for name.
func (c *endpointCache) get(name string) (domain.CachedEndpointSet, bool) {
	v, ok := c.store.Get(name)
	if !ok {
		return domain.CachedEndpointSet{}, false
	}
	set := v.(domain.CachedEndpointSet)
	if set.Expired(c.clock.Now()) {
		return domain.CachedEndpointSet{}, false
	}
	return set, true
}

// getOrFetch returns the cached endpoints of name, calling fetch on a miss. Fetch results are
// stored with a fresh expiry, empty ones included, so a service without healthy instances is
// not asked for again before the set expires. Errors are not stored.
//
// Returns: (endpoints, fetched, nil) where fetched is true only for the one caller whose fetch
// actually ran (callers that waited on it, or that hit the cache, get false); (nil, fetched, err)
// when fetch failed.
//
// Called from channelPool.resolveEndpoint.
func (c *endpointCache) getOrFetch(name string, fetch func() ([]string, error)) ([]string, bool, error) {
	if set, ok := c.get(name); ok {
		c.metrics.endpointCacheLookups.WithLabelValues(resultHit).Inc()
		return set.Endpoints, false, nil
	}
	c.metrics.endpointCacheLookups.WithLabelValues(resultMiss).Inc()
	fetched := false
	v, err, _ := c.flight.Do(name, func() (any, error) {
		// A flight that finished just before this one may already have stored the set.
		if set, ok := c.get(name); ok {
			return set.Endpoints, nil
		}
		fetched = true
		endpoints, err := fetch()
		if err != nil {
			return nil, err
		}
		endpoints = append([]string{}, endpoints...)
		c.store.Set(name, domain.CachedEndpointSet{
			ServiceName: name,
			Endpoints:   endpoints,
			ExpiresAt:   c.clock.Now().Add(c.ttl),
		}, c.ttl)
		return endpoints, nil
	})
	if err != nil {
		return nil, fetched, err
	}
	return v.([]string), fetched, nil
}

func (c *endpointCache) flush() {
	c.store.Flush()
}

func (c *endpointCache) count() int {
	return c.store.ItemCount()
}
