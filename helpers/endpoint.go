package helpers

import (
	"net"
	"strconv"
)

// JoinEndpoint builds a "host:port" endpoint; IPv6 hosts are bracketed.
func JoinEndpoint(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// ContainsEndpoint reports whether endpoint is in endpoints.
func ContainsEndpoint(endpoints []string, endpoint string) bool {
	for _, e := range endpoints {
		if e == endpoint {
			return true
		}
	}
	return false
}
