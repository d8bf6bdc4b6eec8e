package interfaces

// LoadBalancer picks one endpoint out of a non-empty candidate set.
//
// Implemented by service.roundRobinBalancer and service.randomBalancer.
// Called from service.channelPool.resolveEndpoint after the healthy set is known.
//
//go:generate moq -stub -out mock/load_balancer.go -pkg mock . LoadBalancer
type LoadBalancer interface {
	// SelectEndpoint returns exactly one member of candidates.
	// Parameters: serviceName — discovery service name (balancers may keep per-service state); candidates — healthy endpoints, never empty (the caller checks).
	// Returns: the chosen endpoint.
	SelectEndpoint(serviceName string, candidates []string) string
}
