package domain

import "time"

// CachedEndpointSet is the last healthy endpoint list fetched for a discovery service name.
// It is replaced as a whole on refresh and never mutated.
type CachedEndpointSet struct {
	ServiceName string
	Endpoints   []string
	ExpiresAt   time.Time
}

// Expired reports whether the set is no longer usable at now.
func (s CachedEndpointSet) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ServiceInstance is one registered instance as stored by the redis registry.
type ServiceInstance struct {
	InstanceID string   `json:"instance_id"`
	Ipv4       string   `json:"ipv4"`
	Port       int      `json:"port"`
	Tags       []string `json:"tags,omitempty"`
}

// HasTag reports whether tag is empty or listed in Tags.
func (i ServiceInstance) HasTag(tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
