package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"channelpool/domain"
)

// ServiceConfigStore holds the client configs registered at startup, keyed by trimmed service
// name. Configs are validated on the way in and never change afterwards.
type ServiceConfigStore struct {
	mu      sync.RWMutex
	configs map[string][]domain.ServiceClientConfig
}

// NewServiceConfigStore creates a store and registers configs.
//
// Returns: (*ServiceConfigStore, nil) on success; (nil, error wrapping ErrInvalidConfig) when a config fails validation.
//
// Called from cmd when building the pool and from tests.
func NewServiceConfigStore(configs ...domain.ServiceClientConfig) (*ServiceConfigStore, error) {
	s := &ServiceConfigStore{configs: make(map[string][]domain.ServiceClientConfig)}
	if err := s.Register(configs...); err != nil {
		return nil, err
	}
	return s, nil
}

// Register normalizes, validates and adds configs. Nothing is added when any config is invalid.
// Registering a second config under an existing name is accepted here; Lookup then reports
// ErrAmbiguousConfig for that name.
func (s *ServiceConfigStore) Register(configs ...domain.ServiceClientConfig) error {
	normalized := make([]domain.ServiceClientConfig, 0, len(configs))
	for _, cfg := range configs {
		cfg = cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		normalized = append(normalized, cfg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cfg := range normalized {
		s.configs[cfg.ServiceName] = append(s.configs[cfg.ServiceName], cfg)
	}
	return nil
}

// Lookup returns the config registered for the trimmed serviceName.
//
// Returns: (config, nil) when exactly one is registered; ErrConfigNotFound when none is; ErrAmbiguousConfig when several are.
//
// Called from channelPool.GetChannel.
func (s *ServiceConfigStore) Lookup(serviceName string) (domain.ServiceClientConfig, error) {
	name := strings.TrimSpace(serviceName)
	s.mu.RLock()
	found := s.configs[name]
	s.mu.RUnlock()
	switch len(found) {
	case 0:
		return domain.ServiceClientConfig{}, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	case 1:
		return found[0], nil
	default:
		return domain.ServiceClientConfig{}, fmt.Errorf("%w: %q registered %d times", ErrAmbiguousConfig, name, len(found))
	}
}

// Names returns the registered service names in sorted order.
func (s *ServiceConfigStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.configs))
	for name := range s.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
