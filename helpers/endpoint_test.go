package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinEndpoint(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{name: "ipv4", host: "10.0.0.1", port: 50051, want: "10.0.0.1:50051"},
		{name: "hostname", host: "order.internal", port: 8080, want: "order.internal:8080"},
		{name: "ipv6", host: "::1", port: 50051, want: "[::1]:50051"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinEndpoint(tt.host, tt.port))
		})
	}
}

func TestContainsEndpoint(t *testing.T) {
	eps := []string{"10.0.0.1:50051", "10.0.0.2:50051"}
	assert.True(t, ContainsEndpoint(eps, "10.0.0.2:50051"))
	assert.False(t, ContainsEndpoint(eps, "10.0.0.3:50051"))
	assert.False(t, ContainsEndpoint(nil, "10.0.0.1:50051"))
}
