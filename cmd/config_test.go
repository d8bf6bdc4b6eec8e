package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"channelpool/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "channelpool.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Setenv(envDiscoveryURL, "")
	cfgPath := writeConfig(t, `
discovery_url: http://consul:8500
discovery_backend: http
endpoint_cache_ttl_ms: 5000
connect_timeout_ms: 750
load_balancer: random
services:
  - service_name: math
    use_direct: true
    direct_endpoint: 10.0.0.5:50051
  - service_name: " order "
    discovery_service_name: order-v2
    discovery_service_tag: grpc
    channel_options:
      authority: order.internal
      user_agent: order-client
      max_recv_msg_size: 8388608
      max_send_msg_size: 4194304
      keepalive_time_ms: 30000
      keepalive_timeout_ms: 5000
      permit_without_stream: true
  - service_name: billing
    discovery_url: http://consul.eu:8500
`)

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "http://consul:8500", cfg.Pool.DefaultDiscoveryURL)
	assert.Equal(t, 5*time.Second, cfg.Pool.EndpointCacheTTL)
	assert.Equal(t, 750*time.Millisecond, cfg.Pool.ConnectTimeout)
	assert.Equal(t, backendHTTP, cfg.Backend)
	assert.Equal(t, domain.BalancerRandom, cfg.LoadBalancer)
	require.Len(t, cfg.Services, 3)

	assert.Equal(t, domain.ServiceClientConfig{
		ServiceName:          "math",
		UseDirect:            true,
		DirectEndpoint:       "10.0.0.5:50051",
		DiscoveryServiceName: "math",
	}, cfg.Services[0])

	order := cfg.Services[1]
	assert.Equal(t, "order", order.ServiceName)
	assert.Equal(t, "order-v2", order.DiscoveryServiceName)
	assert.Equal(t, "grpc", order.DiscoveryServiceTag)
	assert.Equal(t, domain.ChannelOptions{
		Authority:           "order.internal",
		UserAgent:           "order-client",
		MaxRecvMsgSize:      8 << 20,
		MaxSendMsgSize:      4 << 20,
		KeepaliveTime:       30 * time.Second,
		KeepaliveTimeout:    5 * time.Second,
		PermitWithoutStream: true,
	}, order.ChannelOptions)

	assert.Equal(t, "http://consul.eu:8500", cfg.Services[2].DiscoveryURL)
	assert.Equal(t, "billing", cfg.Services[2].DiscoveryServiceName)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(envDiscoveryURL, "")
	cfgPath := writeConfig(t, `
discovery_url: http://consul:8500
services:
  - service_name: order
`)
	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEndpointCacheTTL, cfg.Pool.EndpointCacheTTL)
	assert.Equal(t, domain.DefaultConnectTimeout, cfg.Pool.ConnectTimeout)
	assert.Equal(t, backendHTTP, cfg.Backend)
	assert.Equal(t, domain.BalancerRoundRobin, cfg.LoadBalancer)
}

func TestLoadConfig_PathFromEnv(t *testing.T) {
	t.Setenv(envDiscoveryURL, "")
	cfgPath := writeConfig(t, `
discovery_backend: redis
discovery_url: redis://registry:6379/0
services:
  - service_name: order
`)
	t.Setenv(envConfigPath, cfgPath)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, backendRedis, cfg.Backend)
	assert.Equal(t, "redis://registry:6379/0", cfg.Pool.DefaultDiscoveryURL)
}

func TestLoadConfig_DiscoveryURLFromEnv(t *testing.T) {
	t.Setenv(envDiscoveryURL, "http://consul.override:8500")
	cfgPath := writeConfig(t, `
discovery_url: http://consul:8500
services:
  - service_name: order
`)
	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "http://consul.override:8500", cfg.Pool.DefaultDiscoveryURL)
}

func TestLoadConfig_PathMissing(t *testing.T) {
	t.Setenv(envConfigPath, "")
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), envConfigPath)
}

func TestLoadConfig_FileMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(envDiscoveryURL, "")
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "bad_yaml",
			content:     "services: [",
			errContains: "load config",
		},
		{
			name:        "negative_ttl",
			content:     "endpoint_cache_ttl_ms: -1\nservices:\n  - service_name: math\n    use_direct: true\n    direct_endpoint: a:1\n",
			errContains: "endpoint_cache_ttl_ms",
		},
		{
			name:        "negative_connect_timeout",
			content:     "connect_timeout_ms: -5\nservices:\n  - service_name: math\n    use_direct: true\n    direct_endpoint: a:1\n",
			errContains: "connect_timeout_ms",
		},
		{
			name:        "unknown_backend",
			content:     "discovery_backend: etcd\nservices:\n  - service_name: math\n    use_direct: true\n    direct_endpoint: a:1\n",
			errContains: "discovery_backend",
		},
		{
			name:        "unknown_balancer",
			content:     "load_balancer: least_conn\nservices:\n  - service_name: math\n    use_direct: true\n    direct_endpoint: a:1\n",
			errContains: "load_balancer",
		},
		{
			name:        "no_services",
			content:     "discovery_url: http://consul:8500\n",
			errContains: "services must not be empty",
		},
		{
			name:        "direct_without_endpoint",
			content:     "services:\n  - service_name: math\n    use_direct: true\n",
			errContains: "services[0]: service[math]",
		},
		{
			name:        "discovery_without_url",
			content:     "services:\n  - service_name: order\n",
			errContains: "needs discovery_url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
