package service

import (
	"sync"
	"testing"

	"channelpool/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinBalancer_rotates(t *testing.T) {
	b := NewRoundRobinBalancer()
	candidates := []string{"10.0.0.1:80", "10.0.0.2:80", "10.0.0.3:80"}
	var got []string
	for range 6 {
		got = append(got, b.SelectEndpoint("orders", candidates))
	}
	assert.Equal(t, []string{
		"10.0.0.1:80", "10.0.0.2:80", "10.0.0.3:80",
		"10.0.0.1:80", "10.0.0.2:80", "10.0.0.3:80",
	}, got)
}

func TestRoundRobinBalancer_countersPerService(t *testing.T) {
	b := NewRoundRobinBalancer()
	candidates := []string{"a:1", "b:1"}
	assert.Equal(t, "a:1", b.SelectEndpoint("orders", candidates))
	assert.Equal(t, "a:1", b.SelectEndpoint("billing", candidates))
	assert.Equal(t, "b:1", b.SelectEndpoint("orders", candidates))
}

func TestRoundRobinBalancer_empty(t *testing.T) {
	assert.Equal(t, "", NewRoundRobinBalancer().SelectEndpoint("orders", nil))
}

func TestRoundRobinBalancer_concurrentEvenSpread(t *testing.T) {
	b := NewRoundRobinBalancer()
	candidates := []string{"a:1", "b:1", "c:1", "d:1"}
	var (
		mu     sync.Mutex
		counts = map[string]int{}
		wg     sync.WaitGroup
	)
	for range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ep := b.SelectEndpoint("orders", candidates)
			mu.Lock()
			counts[ep]++
			mu.Unlock()
		}()
	}
	wg.Wait()
	for _, c := range candidates {
		assert.Equal(t, 10, counts[c], c)
	}
}

func TestRandomBalancer_staysInCandidates(t *testing.T) {
	b := NewRandomBalancer()
	candidates := []string{"a:1", "b:1", "c:1"}
	for range 100 {
		assert.Contains(t, candidates, b.SelectEndpoint("orders", candidates))
	}
	assert.Equal(t, "", b.SelectEndpoint("orders", []string{}))
}

func TestNewLoadBalancer(t *testing.T) {
	t.Run("default_is_round_robin", func(t *testing.T) {
		b, err := NewLoadBalancer("")
		require.NoError(t, err)
		assert.IsType(t, &roundRobinBalancer{}, b)
	})
	t.Run("round_robin", func(t *testing.T) {
		b, err := NewLoadBalancer(domain.BalancerRoundRobin)
		require.NoError(t, err)
		assert.IsType(t, &roundRobinBalancer{}, b)
	})
	t.Run("random", func(t *testing.T) {
		b, err := NewLoadBalancer(domain.BalancerRandom)
		require.NoError(t, err)
		assert.IsType(t, randomBalancer{}, b)
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := NewLoadBalancer("least_conn")
		assert.ErrorContains(t, err, "least_conn")
	})
}
