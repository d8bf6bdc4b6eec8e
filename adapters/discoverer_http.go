package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"channelpool/helpers"
	"channelpool/interfaces"
)

// NewDiscovererHTTP creates an interfaces.Discoverer that asks a Consul-compatible health API
// for passing instances: GET {discoveryURL}/v1/health/service/{name}?passing=true[&tag=t]. Panics on nil client.
//
// Parameter client — HTTP client used for every request; each request also gets a 5s deadline.
//
// Returns: interfaces.Discoverer (*discovererHTTP).
//
// Called from cmd when discovery_backend is "http".
func NewDiscovererHTTP(client *http.Client) interfaces.Discoverer {
	return &discovererHTTP{
		client: helpers.NilPanic(client, "adapters.discoverer_http.go: http client is required"),
	}
}

// discovererHTTP implements interfaces.Discoverer over the Consul health endpoint. The
// discovery URL comes with every call, so one instance serves all configured backends.
type discovererHTTP struct {
	client *http.Client
}

// healthEntry is one element of the health endpoint's JSON array. Only the fields needed to
// build an address are decoded.
type healthEntry struct {
	Node struct {
		Address string `json:"Address"`
	} `json:"Node"`
	Service struct {
		ID      string   `json:"ID"`
		Address string   `json:"Address"`
		Port    int      `json:"Port"`
		Tags    []string `json:"Tags"`
	} `json:"Service"`
}

// GetHealthyEndpoints performs the health query with a 5s timeout. The address of an entry is
// Service.Address, or Node.Address when the service did not register one, joined with
// Service.Port. Entries without a usable address or port are skipped.
//
// Returns: (endpoints, nil) on 200 (possibly empty) or 404 (empty, unknown service); (nil, error) on
// empty discoveryURL, other status, network or JSON error.
//
// Called from service.channelPool.resolveEndpoint on endpoint cache misses.
func (d *discovererHTTP) GetHealthyEndpoints(serviceName, discoveryURL, tag string) ([]string, error) {
	if discoveryURL == "" {
		return nil, fmt.Errorf("discovery url is required for service %q", serviceName)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	query := url.Values{"passing": []string{"true"}}
	if tag != "" {
		query.Set("tag", tag)
	}
	reqURL := strings.TrimRight(discoveryURL, "/") + "/v1/health/service/" + url.PathEscape(serviceName) + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return []string{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("discovery returned %d for service %q", resp.StatusCode, serviceName)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var entries []healthEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode health response for service %q: %w", serviceName, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		host := e.Service.Address
		if host == "" {
			host = e.Node.Address
		}
		if host == "" || e.Service.Port <= 0 {
			continue
		}
		out = append(out, helpers.JoinEndpoint(host, e.Service.Port))
	}
	return out, nil
}
