package interfaces

// Discoverer reports which endpoints of a service are currently healthy according to a
// discovery backend (e.g. Consul health API or the redis instance registry).
//
// Implemented by adapters.discovererHTTP and adapters.discovererRedis. Called from
// service.channelPool.resolveEndpoint on every endpoint-cache miss.
//
//go:generate moq -stub -out mock/discoverer.go -pkg mock . Discoverer
type Discoverer interface {
	// GetHealthyEndpoints returns the healthy endpoints ("host:port") of serviceName.
	// Parameters: serviceName — name inside the discovery backend; discoveryURL — backend location (HTTP base URL or redis URL); tag — optional tag filter, empty means no filter.
	// Returns: (endpoints, nil) on success, possibly empty; (nil, error) on network or decode error. Never returns (nil, nil); an empty result is a non-nil empty slice.
	// Called from service.channelPool.resolveEndpoint when the endpoint cache misses.
	GetHealthyEndpoints(serviceName, discoveryURL, tag string) ([]string, error)
}
