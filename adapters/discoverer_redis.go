package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"channelpool/domain"
	"channelpool/helpers"
	"channelpool/interfaces"

	"github.com/go-redis/redis/v8"
)

// RedisDialer creates a redis client for a discovery URL.
type RedisDialer func(redisURL string) (redis.UniversalClient, error)

// DiscovererRedis is an interfaces.Discoverer reading an instance registry kept in redis.
// Instances write "{service}:{instance_id}" keys holding a JSON domain.ServiceInstance with a
// heartbeat TTL; a key that exists is a healthy instance.
type DiscovererRedis interface {
	interfaces.Discoverer
	// Close closes every client opened so far.
	Close() error
}

// NewDiscovererRedis creates a redis-backed discoverer. One client is opened per distinct
// discovery URL on first use and reused afterwards. Panics on nil dial.
//
// Parameter dial — client constructor, usually NewRedisUniversalClient.
//
// Returns: DiscovererRedis (*discovererRedis).
//
// Called from cmd when discovery_backend is "redis".
func NewDiscovererRedis(dial RedisDialer) DiscovererRedis {
	return &discovererRedis{
		dial:    helpers.NilPanic(dial, "adapters.discoverer_redis.go: dial is required"),
		clients: make(map[string]redis.UniversalClient),
	}
}

type discovererRedis struct {
	dial    RedisDialer
	mu      sync.Mutex
	clients map[string]redis.UniversalClient
}

func (d *discovererRedis) client(discoveryURL string) (redis.UniversalClient, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.clients[discoveryURL]; ok {
		return c, nil
	}
	c, err := d.dial(discoveryURL)
	if err != nil {
		return nil, err
	}
	d.clients[discoveryURL] = c
	return c, nil
}

// GetHealthyEndpoints lists the "{serviceName}:*" keys with a 5s timeout and decodes each value.
// Keys that expire between listing and reading, undecodable values and instances without the
// requested tag are skipped. Endpoints are ordered by key.
//
// Returns: (endpoints, nil), possibly empty; (nil, error) on empty discoveryURL, bad URL or redis error.
//
// Called from service.channelPool.resolveEndpoint on endpoint cache misses.
func (d *discovererRedis) GetHealthyEndpoints(serviceName, discoveryURL, tag string) ([]string, error) {
	if discoveryURL == "" {
		return nil, fmt.Errorf("discovery url is required for service %q", serviceName)
	}
	c, err := d.client(discoveryURL)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	keys, err := c.Keys(ctx, serviceName+":*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis get keys for service %q: %w", serviceName, err)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.Contains(strings.TrimPrefix(key, serviceName+":"), ":") {
			// belongs to a service whose name extends this one, e.g. "order:v2:<id>"
			continue
		}
		raw, err := c.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get %q: %w", key, err)
		}
		var inst domain.ServiceInstance
		if err := json.Unmarshal(raw, &inst); err != nil {
			continue
		}
		if inst.Ipv4 == "" || inst.Port <= 0 || !inst.HasTag(tag) {
			continue
		}
		out = append(out, helpers.JoinEndpoint(inst.Ipv4, inst.Port))
	}
	return out, nil
}

func (d *discovererRedis) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var errs []error
	for url, c := range d.clients {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis client %s: %w", url, err))
		}
		delete(d.clients, url)
	}
	return errors.Join(errs...)
}

// RegisterInstance writes inst under "{serviceName}:{inst.InstanceID}" with ttl. Instances call
// it on every heartbeat; the CLI and tests use it to seed the registry.
func RegisterInstance(ctx context.Context, client redis.UniversalClient, serviceName string, inst domain.ServiceInstance, ttl time.Duration) error {
	raw, err := json.Marshal(inst)
	if err != nil {
		return fmt.Errorf("marshal instance %q: %w", inst.InstanceID, err)
	}
	if err := client.Set(ctx, serviceName+":"+inst.InstanceID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis write instance %q: %w", inst.InstanceID, err)
	}
	return nil
}
