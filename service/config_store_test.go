package service

import (
	"testing"

	"channelpool/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceConfigStore(t *testing.T) {
	store, err := NewServiceConfigStore(
		domain.ServiceClientConfig{ServiceName: " order "},
		directConfig("math", "10.0.0.5:50051"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "order"}, store.Names())

	cfg, err := store.Lookup("order")
	require.NoError(t, err)
	assert.Equal(t, "order", cfg.ServiceName)
	assert.Equal(t, "order", cfg.DiscoveryServiceName)
}

func TestNewServiceConfigStore_invalid(t *testing.T) {
	store, err := NewServiceConfigStore(domain.ServiceClientConfig{ServiceName: "math", UseDirect: true})
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "math", cfgErr.ServiceName)
}

func TestServiceConfigStore_Register_allOrNothing(t *testing.T) {
	store, err := NewServiceConfigStore()
	require.NoError(t, err)

	err = store.Register(discoveryConfig("order"), domain.ServiceClientConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Empty(t, store.Names())
}

func TestServiceConfigStore_Lookup(t *testing.T) {
	store, err := NewServiceConfigStore(discoveryConfig("order"), discoveryConfig("billing"), discoveryConfig("billing"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		lookup  string
		wantErr error
	}{
		{name: "found", lookup: "order"},
		{name: "found_trimmed", lookup: "\torder "},
		{name: "case_sensitive", lookup: "Order", wantErr: ErrConfigNotFound},
		{name: "missing", lookup: "math", wantErr: ErrConfigNotFound},
		{name: "ambiguous", lookup: "billing", wantErr: ErrAmbiguousConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := store.Lookup(tt.lookup)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.ServiceClientConfig{}, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "order", cfg.ServiceName)
		})
	}
}
