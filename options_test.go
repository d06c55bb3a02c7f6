package microya

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func TestWithHTTPClient(t *testing.T) {
	client := &stubClient{}
	provider := NewProvider("https://api.example.com", WithHTTPClient(client))

	if provider.httpClient != client {
		t.Error("Expected the custom transport to be installed")
	}
}

func TestWithTimeout(t *testing.T) {
	provider := NewProvider("https://api.example.com", WithTimeout(5*time.Second))

	client, ok := provider.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("Expected default *http.Client, got %T", provider.httpClient)
	}
	if client.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", client.Timeout)
	}
}

func TestWithTimeoutIgnoredForCustomTransport(t *testing.T) {
	client := &stubClient{}
	provider := NewProvider("https://api.example.com",
		WithHTTPClient(client),
		WithTimeout(5*time.Second),
	)

	if provider.httpClient != client {
		t.Error("Expected the custom transport to survive WithTimeout")
	}
}

func TestWithPluginsPreservesOrder(t *testing.T) {
	first := NewRequestIDPlugin()
	second := NewHeaderPlugin(nil)
	provider := NewProvider("https://api.example.com",
		WithPlugins(first),
		WithPlugins(second),
	)

	if len(provider.plugins) != 2 {
		t.Fatalf("Expected 2 plugins, got %d", len(provider.plugins))
	}
	if provider.plugins[0] != Plugin(first) || provider.plugins[1] != Plugin(second) {
		t.Error("Expected plugins in registration order")
	}
}

func TestWithMetricsCollector(t *testing.T) {
	collector := NewMetricsCollectorWithRegistry(prometheus.NewRegistry())
	provider := NewProvider("https://api.example.com", WithMetricsCollector(collector))

	if provider.metrics != collector {
		t.Error("Expected the custom collector to be installed")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	provider := NewProvider("https://api.example.com", WithLogger(zerolog.New(&buf)))

	if provider.logger == nil {
		t.Fatal("Expected a logger to be installed")
	}
	provider.logger.Debug().Msg("probe")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("Expected the logger to write to the buffer, got %q", buf.String())
	}
}

func TestWithRequestIDGenerator(t *testing.T) {
	provider := NewProvider("https://api.example.com",
		WithRequestIDGenerator(func() string { return "fixed-id" }),
	)

	if got := provider.requestIDGen(); got != "fixed-id" {
		t.Errorf("Expected fixed-id, got %q", got)
	}
}

func TestValidateConfiguration(t *testing.T) {
	testCases := []struct {
		name     string
		baseURL  string
		options  []Option
		fragment string
	}{
		{"empty base URL", "", nil, "baseURL must not be empty"},
		{"relative base URL", "api.example.com", nil, "must be absolute"},
		{"nil transport", "https://api.example.com", []Option{WithHTTPClient(nil)}, "httpClient must not be nil"},
		{"nil request ID generator", "https://api.example.com", []Option{WithRequestIDGenerator(nil)}, "requestIDGen must not be nil"},
		{"nil plugin", "https://api.example.com", []Option{WithPlugins(nil)}, "plugin at index 0 is nil"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := NewProvider(tc.baseURL, tc.options...)
			if provider.IsValid() {
				t.Fatal("Expected configuration to be invalid")
			}
			if err := provider.ValidationError(); !strings.Contains(err.Error(), tc.fragment) {
				t.Errorf("Expected %q in %q", tc.fragment, err.Error())
			}
		})
	}
}

func TestValidateConfigurationAggregates(t *testing.T) {
	provider := NewProvider("", WithHTTPClient(nil))

	err := provider.ValidationError()
	if err == nil {
		t.Fatal("Expected aggregated validation error")
	}
	if !strings.Contains(err.Error(), "baseURL") || !strings.Contains(err.Error(), "httpClient") {
		t.Errorf("Expected both problems to be reported, got %q", err.Error())
	}
}
