package service

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"channelpool/domain"
	"channelpool/interfaces"
)

// roundRobinBalancer rotates through the candidates with one counter per service name.
type roundRobinBalancer struct {
	counters sync.Map // service name -> *atomic.Uint64
}

// NewRoundRobinBalancer returns a LoadBalancer that cycles through the candidate list in order.
// Counters are per service and survive changes of the candidate set.
func NewRoundRobinBalancer() interfaces.LoadBalancer {
	return &roundRobinBalancer{}
}

// SelectEndpoint returns candidates[n % len(candidates)] for the n-th call for serviceName,
// or "" for an empty list.
func (b *roundRobinBalancer) SelectEndpoint(serviceName string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	v, _ := b.counters.LoadOrStore(serviceName, new(atomic.Uint64))
	n := v.(*atomic.Uint64).Add(1) - 1
	return candidates[n%uint64(len(candidates))]
}

type randomBalancer struct{}

// NewRandomBalancer returns a LoadBalancer that picks a uniformly random candidate.
func NewRandomBalancer() interfaces.LoadBalancer {
	return randomBalancer{}
}

func (randomBalancer) SelectEndpoint(_ string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rand.IntN(len(candidates))]
}

// NewLoadBalancer returns the balancer for t; the empty type means round robin.
//
// Returns: (balancer, nil); (nil, error) for an unknown type.
//
// Called from cmd when building the pool from config.
func NewLoadBalancer(t domain.BalancerType) (interfaces.LoadBalancer, error) {
	switch t {
	case "", domain.BalancerRoundRobin:
		return NewRoundRobinBalancer(), nil
	case domain.BalancerRandom:
		return NewRandomBalancer(), nil
	default:
		return nil, fmt.Errorf("unknown load balancer %q", t)
	}
}
