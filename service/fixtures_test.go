package service

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"channelpool/domain"
	"channelpool/helpers"
	"channelpool/interfaces"
	"channelpool/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/connectivity"
)

const testDiscoveryURL = "http://consul.local:8500"

// fakeConn is a mocked channel whose state follows WaitForReady and Close.
type fakeConn struct {
	*mock.ChannelMock
	state atomic.Int32
}

func newFakeConn(target string, connectErr error, onWait func()) *fakeConn {
	c := &fakeConn{}
	c.state.Store(int32(connectivity.Idle))
	c.ChannelMock = &mock.ChannelMock{
		TargetFunc: func() string { return target },
		GetStateFunc: func() connectivity.State {
			return connectivity.State(c.state.Load())
		},
		WaitForReadyFunc: func(ctx context.Context) error {
			if onWait != nil {
				onWait()
			}
			if connectErr != nil {
				c.state.Store(int32(connectivity.TransientFailure))
				return connectErr
			}
			c.state.Store(int32(connectivity.Ready))
			return nil
		},
		CloseFunc: func() error {
			c.state.Store(int32(connectivity.Shutdown))
			return nil
		},
	}
	return c
}

func (c *fakeConn) setState(s connectivity.State) {
	c.state.Store(int32(s))
}

// fakeFactory hands out fakeConns; endpoints listed in failing never become Ready.
type fakeFactory struct {
	*mock.ChannelFactoryMock
	mu      sync.Mutex
	failing map[string]error
	conns   map[string][]*fakeConn
	onWait  func(endpoint string)
}

func newFakeFactory() *fakeFactory {
	f := &fakeFactory{
		failing: map[string]error{},
		conns:   map[string][]*fakeConn{},
	}
	f.ChannelFactoryMock = &mock.ChannelFactoryMock{
		NewChannelFunc: func(endpoint string, _ domain.ChannelOptions) (interfaces.Channel, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var onWait func()
			if f.onWait != nil {
				hook := f.onWait
				onWait = func() { hook(endpoint) }
			}
			c := newFakeConn(endpoint, f.failing[endpoint], onWait)
			f.conns[endpoint] = append(f.conns[endpoint], c)
			return c, nil
		},
	}
	return f
}

func (f *fakeFactory) fail(endpoint string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[endpoint] = err
}

func (f *fakeFactory) created(endpoint string) []*fakeConn {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeConn(nil), f.conns[endpoint]...)
}

type poolFixture struct {
	pool       *channelPool
	discoverer *mock.DiscovererMock
	balancer   *mock.LoadBalancerMock
	factory    *fakeFactory
	clock      clockwork.FakeClock
	metrics    *Metrics
	logs       *bytes.Buffer
}

// newPoolFixture builds a pool over mocks. The balancer picks the first candidate and
// discovery returns nothing until a test sets GetHealthyEndpointsFunc.
func newPoolFixture(t *testing.T, cfg domain.PoolConfig, configs ...domain.ServiceClientConfig) *poolFixture {
	t.Helper()
	store, err := NewServiceConfigStore(configs...)
	require.NoError(t, err)
	f := &poolFixture{
		discoverer: &mock.DiscovererMock{},
		balancer: &mock.LoadBalancerMock{
			SelectEndpointFunc: func(_ string, candidates []string) string { return candidates[0] },
		},
		factory: newFakeFactory(),
		clock:   helpers.NewTestClock(),
		metrics: NewMetrics(nil),
		logs:    &bytes.Buffer{},
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(f.logs))
	f.pool = newChannelPool(cfg, store, f.discoverer, f.balancer, f.factory, logger,
		WithClock(f.clock), WithMetrics(f.metrics))
	return f
}

func defaultPoolConfig() domain.PoolConfig {
	return domain.PoolConfig{
		DefaultDiscoveryURL: testDiscoveryURL,
		EndpointCacheTTL:    10 * time.Second,
		ConnectTimeout:      50 * time.Millisecond,
	}
}

func directConfig(name, endpoint string) domain.ServiceClientConfig {
	return domain.ServiceClientConfig{ServiceName: name, UseDirect: true, DirectEndpoint: endpoint}
}

func discoveryConfig(name string) domain.ServiceClientConfig {
	return domain.ServiceClientConfig{ServiceName: name}
}

func staticEndpoints(endpoints ...string) func(string, string, string) ([]string, error) {
	return func(string, string, string) ([]string, error) {
		return endpoints, nil
	}
}
