package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"channelpool/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath   = "CHANNELPOOL_CONFIG_PATH"
	envDiscoveryURL = "CHANNELPOOL_DISCOVERY_URL"
)

// Discovery backends.
const (
	backendHTTP  = "http"
	backendRedis = "redis"
)

// Config is the CLI configuration loaded by LoadConfig from the YAML file and environment.
// Pool carries the process-wide pool settings; Services the client configs, normalized and validated.
type Config struct {
	Pool         domain.PoolConfig
	Backend      string
	LoadBalancer domain.BalancerType
	Services     []domain.ServiceClientConfig
}

// yamlConfig is the root struct for YAML unmarshalling.
type yamlConfig struct {
	DiscoveryURL     string        `yaml:"discovery_url"`
	DiscoveryBackend string        `yaml:"discovery_backend"`
	EndpointCacheTTL int           `yaml:"endpoint_cache_ttl_ms"`
	ConnectTimeout   int           `yaml:"connect_timeout_ms"`
	LoadBalancer     string        `yaml:"load_balancer"`
	Services         []yamlService `yaml:"services"`
}

// yamlService is one services[] entry.
type yamlService struct {
	ServiceName          string             `yaml:"service_name"`
	UseDirect            bool               `yaml:"use_direct"`
	DirectEndpoint       string             `yaml:"direct_endpoint"`
	DiscoveryURL         string             `yaml:"discovery_url"`
	DiscoveryServiceName string             `yaml:"discovery_service_name"`
	DiscoveryServiceTag  string             `yaml:"discovery_service_tag"`
	ChannelOptions       yamlChannelOptions `yaml:"channel_options"`
}

type yamlChannelOptions struct {
	Authority           string `yaml:"authority"`
	UserAgent           string `yaml:"user_agent"`
	MaxRecvMsgSize      int    `yaml:"max_recv_msg_size"`
	MaxSendMsgSize      int    `yaml:"max_send_msg_size"`
	KeepaliveTimeMs     int    `yaml:"keepalive_time_ms"`
	KeepaliveTimeoutMs  int    `yaml:"keepalive_timeout_ms"`
	PermitWithoutStream bool   `yaml:"permit_without_stream"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) otherwise.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the CLI config from the YAML file at path (CHANNELPOOL_CONFIG_PATH when
// path is empty). CHANNELPOOL_DISCOVERY_URL, when set, replaces discovery_url. Durations are
// milliseconds; zero means the pool default. discovery_backend defaults to http and
// load_balancer to round_robin. Every service is normalized and validated.
//
// Returns: (*Config, nil) on success; (nil, error) on missing path, YAML load/parse error,
// negative durations, unknown backend or balancer, no services, or an invalid service.
//
// Called from the cobra commands before building the pool.
func LoadConfig(path string) (*Config, error) {
	configPath := strings.TrimSpace(path)
	if configPath == "" {
		configPath = strings.TrimSpace(os.Getenv(envConfigPath))
	}
	if configPath == "" {
		return nil, fmt.Errorf("--config or %s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	discoveryURL := strings.TrimSpace(raw.DiscoveryURL)
	if env := strings.TrimSpace(os.Getenv(envDiscoveryURL)); env != "" {
		discoveryURL = env
	}
	if raw.EndpointCacheTTL < 0 {
		return nil, fmt.Errorf("endpoint_cache_ttl_ms must not be negative, got %d", raw.EndpointCacheTTL)
	}
	if raw.ConnectTimeout < 0 {
		return nil, fmt.Errorf("connect_timeout_ms must not be negative, got %d", raw.ConnectTimeout)
	}
	backend := strings.TrimSpace(raw.DiscoveryBackend)
	switch backend {
	case "":
		backend = backendHTTP
	case backendHTTP, backendRedis:
	default:
		return nil, fmt.Errorf("discovery_backend must be http|redis")
	}
	balancer := domain.BalancerType(strings.TrimSpace(raw.LoadBalancer))
	switch balancer {
	case "":
		balancer = domain.BalancerRoundRobin
	case domain.BalancerRoundRobin, domain.BalancerRandom:
	default:
		return nil, fmt.Errorf("load_balancer must be round_robin|random")
	}
	if len(raw.Services) == 0 {
		return nil, fmt.Errorf("services must not be empty")
	}

	services := make([]domain.ServiceClientConfig, 0, len(raw.Services))
	for i, s := range raw.Services {
		cfg := domain.ServiceClientConfig{
			ServiceName:          s.ServiceName,
			UseDirect:            s.UseDirect,
			DirectEndpoint:       s.DirectEndpoint,
			DiscoveryURL:         s.DiscoveryURL,
			DiscoveryServiceName: s.DiscoveryServiceName,
			DiscoveryServiceTag:  s.DiscoveryServiceTag,
			ChannelOptions: domain.ChannelOptions{
				Authority:           strings.TrimSpace(s.ChannelOptions.Authority),
				UserAgent:           strings.TrimSpace(s.ChannelOptions.UserAgent),
				MaxRecvMsgSize:      s.ChannelOptions.MaxRecvMsgSize,
				MaxSendMsgSize:      s.ChannelOptions.MaxSendMsgSize,
				KeepaliveTime:       time.Duration(s.ChannelOptions.KeepaliveTimeMs) * time.Millisecond,
				KeepaliveTimeout:    time.Duration(s.ChannelOptions.KeepaliveTimeoutMs) * time.Millisecond,
				PermitWithoutStream: s.ChannelOptions.PermitWithoutStream,
			},
		}.Normalize()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("services[%d]: %w", i, err)
		}
		if !cfg.UseDirect && cfg.DiscoveryURL == "" && discoveryURL == "" {
			return nil, fmt.Errorf("services[%d]: service %q needs discovery_url (top-level, per service or %s)", i, cfg.ServiceName, envDiscoveryURL)
		}
		services = append(services, cfg)
	}
	return &Config{
		Pool: domain.PoolConfig{
			DefaultDiscoveryURL: discoveryURL,
			EndpointCacheTTL:    time.Duration(raw.EndpointCacheTTL) * time.Millisecond,
			ConnectTimeout:      time.Duration(raw.ConnectTimeout) * time.Millisecond,
		}.WithDefaults(),
		Backend:      backend,
		LoadBalancer: balancer,
		Services:     services,
	}, nil
}
