package microya

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// WithHTTPClient sets a custom transport. Anything satisfying HTTPClient
// works; the default is an *http.Client with a 30s timeout.
func WithHTTPClient(client HTTPClient) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithTimeout sets the request timeout on the default transport. It has no
// effect when a custom HTTPClient is in use.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if client, ok := p.httpClient.(*http.Client); ok {
			client.Timeout = d
		}
	}
}

// WithPlugins appends plugins to the chain. Order matters: plugins run in
// registration order at each lifecycle point. The chain is immutable once
// the provider is constructed.
func WithPlugins(plugins ...Plugin) Option {
	return func(p *Provider) {
		p.plugins = append(p.plugins, plugins...)
	}
}

// WithMetrics enables Prometheus metrics collection on the default registerer.
func WithMetrics() Option {
	return func(p *Provider) {
		p.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(p *Provider) {
		p.metrics = collector
	}
}

// WithLogger enables structured debug logging through the given zerolog
// logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) {
		p.logger = &logger
	}
}

// WithRequestIDGenerator sets a custom function for generating the request
// IDs used in log output. The default generates UUIDs.
func WithRequestIDGenerator(gen func() string) Option {
	return func(p *Provider) {
		p.requestIDGen = gen
	}
}

// ValidateConfiguration checks the provider configuration and returns an
// aggregated error describing every problem found, or nil.
func (p *Provider) ValidateConfiguration() error {
	var problems []string

	problems = append(problems, p.validateBaseURL()...)
	problems = append(problems, p.validateTransport()...)
	problems = append(problems, p.validatePlugins()...)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid provider configuration: %s", strings.Join(problems, "; "))
}

func (p *Provider) validateBaseURL() []string {
	var problems []string

	if p.baseURL == "" {
		problems = append(problems, "baseURL must not be empty")
		return problems
	}
	parsed, err := url.Parse(p.baseURL)
	if err != nil {
		problems = append(problems, fmt.Sprintf("baseURL is not a valid URL: %v", err))
		return problems
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, "baseURL must be absolute (scheme and host)")
	}

	return problems
}

func (p *Provider) validateTransport() []string {
	var problems []string

	if p.httpClient == nil {
		problems = append(problems, "httpClient must not be nil")
	}
	if p.requestIDGen == nil {
		problems = append(problems, "requestIDGen must not be nil")
	}

	return problems
}

func (p *Provider) validatePlugins() []string {
	var problems []string

	for i, plugin := range p.plugins {
		if plugin == nil {
			problems = append(problems, fmt.Sprintf("plugin at index %d is nil", i))
		}
	}

	return problems
}
