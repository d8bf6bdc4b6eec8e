package domain

import (
	"net"
	"strings"
	"time"
)

// ChannelOptions holds transport tuning for channels created for one service. Zero values
// mean "transport default". Passed as-is to interfaces.ChannelFactory.
type ChannelOptions struct {
	Authority           string
	UserAgent           string
	MaxRecvMsgSize      int
	MaxSendMsgSize      int
	KeepaliveTime       time.Duration
	KeepaliveTimeout    time.Duration
	PermitWithoutStream bool
}

// ServiceClientConfig describes how to reach one logical service.
// With UseDirect the DirectEndpoint is dialed verbatim; otherwise the endpoint is looked up in
// the discovery backend under DiscoveryServiceName (and DiscoveryServiceTag, if set).
type ServiceClientConfig struct {
	ServiceName          string
	UseDirect            bool
	DirectEndpoint       string
	DiscoveryURL         string
	DiscoveryServiceName string
	DiscoveryServiceTag  string
	ChannelOptions       ChannelOptions
}

// Normalize returns a copy with names and addresses trimmed and DiscoveryServiceName
// defaulted to ServiceName.
func (c ServiceClientConfig) Normalize() ServiceClientConfig {
	c.ServiceName = strings.TrimSpace(c.ServiceName)
	c.DirectEndpoint = strings.TrimSpace(c.DirectEndpoint)
	c.DiscoveryURL = strings.TrimSpace(c.DiscoveryURL)
	c.DiscoveryServiceName = strings.TrimSpace(c.DiscoveryServiceName)
	c.DiscoveryServiceTag = strings.TrimSpace(c.DiscoveryServiceTag)
	if c.DiscoveryServiceName == "" {
		c.DiscoveryServiceName = c.ServiceName
	}
	return c
}

// Validate checks a normalized config: non-empty service name; for direct configs a host:port
// DirectEndpoint; no negative channel option values.
//
// Returns: nil when valid; *ConfigError with ServiceName and Reason on the first problem found.
func (c ServiceClientConfig) Validate() error {
	if c.ServiceName == "" {
		return &ConfigError{Reason: "service name must be non-empty"}
	}
	if c.UseDirect {
		if c.DirectEndpoint == "" {
			return &ConfigError{ServiceName: c.ServiceName, Reason: "direct endpoint is required when use_direct is set"}
		}
		if _, _, err := net.SplitHostPort(c.DirectEndpoint); err != nil {
			return &ConfigError{ServiceName: c.ServiceName, Reason: "direct endpoint must be host:port"}
		}
	} else if c.DiscoveryServiceName == "" {
		return &ConfigError{ServiceName: c.ServiceName, Reason: "discovery service name must be non-empty"}
	}
	o := c.ChannelOptions
	if o.MaxRecvMsgSize < 0 || o.MaxSendMsgSize < 0 {
		return &ConfigError{ServiceName: c.ServiceName, Reason: "message size limits must not be negative"}
	}
	if o.KeepaliveTime < 0 || o.KeepaliveTimeout < 0 {
		return &ConfigError{ServiceName: c.ServiceName, Reason: "keepalive durations must not be negative"}
	}
	return nil
}

// ConfigError is returned by ServiceClientConfig.Validate.
type ConfigError struct {
	ServiceName string
	Reason      string
}

// Error returns "service[<name>]: <reason>".
func (e *ConfigError) Error() string {
	return "service[" + e.ServiceName + "]: " + e.Reason
}
