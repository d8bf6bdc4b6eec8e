package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscovererHTTP_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.discoverer_http.go: http client is required", func() {
		NewDiscovererHTTP(nil)
	})
}

func TestDiscovererHTTP_GetHealthyEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		wantEndpoints  []string
		wantErr        bool
		wantErrContain string
	}{
		{
			name:       "service_address",
			statusCode: http.StatusOK,
			body: `[
				{"Node":{"Address":"192.168.1.10"},"Service":{"ID":"order-1","Address":"10.0.0.1","Port":50051}},
				{"Node":{"Address":"192.168.1.11"},"Service":{"ID":"order-2","Address":"10.0.0.2","Port":50051}}
			]`,
			wantEndpoints: []string{"10.0.0.1:50051", "10.0.0.2:50051"},
		},
		{
			name:          "node_address_fallback",
			statusCode:    http.StatusOK,
			body:          `[{"Node":{"Address":"192.168.1.10"},"Service":{"ID":"order-1","Address":"","Port":50051}}]`,
			wantEndpoints: []string{"192.168.1.10:50051"},
		},
		{
			name:          "ipv6_bracketed",
			statusCode:    http.StatusOK,
			body:          `[{"Node":{"Address":""},"Service":{"Address":"fd00::1","Port":50051}}]`,
			wantEndpoints: []string{"[fd00::1]:50051"},
		},
		{
			name:          "entries_without_address_or_port_skipped",
			statusCode:    http.StatusOK,
			body:          `[{"Node":{"Address":""},"Service":{"Address":"","Port":50051}},{"Node":{"Address":"10.0.0.3"},"Service":{"Port":0}}]`,
			wantEndpoints: []string{},
		},
		{
			name:          "empty_list",
			statusCode:    http.StatusOK,
			body:          `[]`,
			wantEndpoints: []string{},
		},
		{
			name:          "404_treated_as_empty_list",
			statusCode:    http.StatusNotFound,
			body:          `{}`,
			wantEndpoints: []string{},
		},
		{
			name:           "non_200_returns_error",
			statusCode:     http.StatusInternalServerError,
			body:           `{}`,
			wantErr:        true,
			wantErrContain: "500",
		},
		{
			name:           "invalid_json_returns_error",
			statusCode:     http.StatusOK,
			body:           `not json`,
			wantErr:        true,
			wantErrContain: "decode health response",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/health/service/order", r.URL.Path)
				assert.Equal(t, "true", r.URL.Query().Get("passing"))
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			d := NewDiscovererHTTP(srv.Client())
			got, err := d.GetHealthyEndpoints("order", srv.URL, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				if tt.wantErrContain != "" {
					assert.Contains(t, err.Error(), tt.wantErrContain)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantEndpoints, got)
		})
	}
}

func TestDiscovererHTTP_GetHealthyEndpoints_tagAndTrailingSlash(t *testing.T) {
	var gotPath, gotTag string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTag = r.URL.Query().Get("tag")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	d := NewDiscovererHTTP(srv.Client())
	_, err := d.GetHealthyEndpoints("order", srv.URL+"/", "grpc")
	require.NoError(t, err)
	assert.Equal(t, "/v1/health/service/order", gotPath)
	assert.Equal(t, "grpc", gotTag)
}

func TestDiscovererHTTP_GetHealthyEndpoints_noTagParam(t *testing.T) {
	var hasTag bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasTag = r.URL.Query()["tag"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewDiscovererHTTP(srv.Client()).GetHealthyEndpoints("order", srv.URL, "")
	require.NoError(t, err)
	assert.False(t, hasTag)
}

func TestDiscovererHTTP_GetHealthyEndpoints_errors(t *testing.T) {
	d := NewDiscovererHTTP(&http.Client{})
	t.Run("empty_discovery_url", func(t *testing.T) {
		_, err := d.GetHealthyEndpoints("order", "", "")
		assert.ErrorContains(t, err, "discovery url is required")
	})
	t.Run("connection_refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		_, err := d.GetHealthyEndpoints("order", url, "")
		assert.Error(t, err)
	})
}
