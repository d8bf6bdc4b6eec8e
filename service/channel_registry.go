package service

import (
	"sync"
	"time"

	"channelpool/helpers"
	"channelpool/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/connectivity"
)

// pooledChannel is one registry entry. discoveryServiceName is the discovery name the channel
// was resolved through; it is empty for direct configs so reconciliation never touches them.
type pooledChannel struct {
	address              string
	discoveryServiceName string
	channel              interfaces.Channel
	createdAt            time.Time
}

// channelRegistry maps endpoint address to its pooled channel. Entries are only ever swapped
// with LoadOrStore / CompareAndSwap / CompareAndDelete, and creation for a missing address goes through a
// per-address singleflight, so racing callers observe a single created channel and unrelated
// addresses never wait on each other.
type channelRegistry struct {
	entries  sync.Map // address -> *pooledChannel
	creating singleflight.Group
	metrics  *Metrics
	logger   log.Logger
}

func newChannelRegistry(metrics *Metrics, logger log.Logger) *channelRegistry {
	return &channelRegistry{
		metrics: helpers.NilPanic(metrics, "service.channel_registry.go: metrics is required"),
		logger:  helpers.NilPanic(logger, "service.channel_registry.go: logger is required"),
	}
}

func (r *channelRegistry) load(address string) (*pooledChannel, bool) {
	v, ok := r.entries.Load(address)
	if !ok {
		return nil, false
	}
	return v.(*pooledChannel), true
}

// getOrCreate returns the entry for address, running create when there is none. create may
// return a channel for a different address (failover); it is stored under its own address.
// If that address already has a Ready entry the new channel is closed and the existing entry
// returned; an entry that is not Ready is replaced by the new channel and closed.
//
// Returns: (entry, nil); (nil, err) when create failed. Waiters of the same flight share the result.
//
// Called from channelPool.getOrCreateChannel.
func (r *channelRegistry) getOrCreate(address string, create func() (*pooledChannel, error)) (*pooledChannel, error) {
	if pc, ok := r.load(address); ok {
		return pc, nil
	}
	v, err, _ := r.creating.Do(address, func() (any, error) {
		if pc, ok := r.load(address); ok {
			return pc, nil
		}
		pc, err := create()
		if err != nil {
			return nil, err
		}
		return r.store(pc), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pooledChannel), nil
}

// store puts a freshly created pc under its address and returns the entry callers should use.
func (r *channelRegistry) store(pc *pooledChannel) *pooledChannel {
	for {
		v, loaded := r.entries.LoadOrStore(pc.address, pc)
		if !loaded {
			r.metrics.channelsActive.Inc()
			return pc
		}
		existing := v.(*pooledChannel)
		if existing.channel.GetState() == connectivity.Ready {
			r.close(pc, reasonDuplicate)
			return existing
		}
		if r.entries.CompareAndSwap(pc.address, existing, pc) {
			level.Info(r.logger).Log("msg", "replacing channel that is not ready", "endpoint", existing.address, "state", existing.channel.GetState())
			r.close(existing, reasonNotReady)
			return pc
		}
	}
}

// close counts the eviction and closes pc. A close error is logged only.
func (r *channelRegistry) close(pc *pooledChannel, reason string) {
	r.metrics.channelEvictions.WithLabelValues(reason).Inc()
	if err := pc.channel.Close(); err != nil {
		level.Warn(r.logger).Log("msg", "close channel failed", "endpoint", pc.address, "reason", reason, "err", err)
	}
}

// remove deletes pc if it is still the entry for its address.
//
// Returns: true when this call removed it (the caller then owns closing it).
func (r *channelRegistry) remove(pc *pooledChannel) bool {
	if r.entries.CompareAndDelete(pc.address, pc) {
		r.metrics.channelsActive.Dec()
		return true
	}
	return false
}

// evictUnhealthy removes every entry of discoveryServiceName whose address is not in healthy.
//
// Returns: the removed entries; closing them is up to the caller.
//
// Called from channelPool.reconcile after a real discovery refresh.
func (r *channelRegistry) evictUnhealthy(discoveryServiceName string, healthy []string) []*pooledChannel {
	var evicted []*pooledChannel
	r.entries.Range(func(_, v any) bool {
		pc := v.(*pooledChannel)
		if pc.discoveryServiceName != discoveryServiceName || helpers.ContainsEndpoint(healthy, pc.address) {
			return true
		}
		if r.remove(pc) {
			evicted = append(evicted, pc)
		}
		return true
	})
	return evicted
}

// drain removes and returns every entry.
func (r *channelRegistry) drain() []*pooledChannel {
	var drained []*pooledChannel
	r.entries.Range(func(k, _ any) bool {
		if v, loaded := r.entries.LoadAndDelete(k); loaded {
			r.metrics.channelsActive.Dec()
			drained = append(drained, v.(*pooledChannel))
		}
		return true
	})
	return drained
}

func (r *channelRegistry) size() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
