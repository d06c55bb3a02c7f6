package microya

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Provider dispatches declarative endpoints against one base URL, applying
// the plugin chain around each call and classifying every raw outcome into
// a typed result. It is safe for concurrent use: all configuration is fixed
// at construction and no state is shared between calls.
type Provider struct {
	baseURL         string
	httpClient      HTTPClient
	plugins         []Plugin
	metrics         *MetricsCollector
	logger          *zerolog.Logger
	requestIDGen    func() string
	validationError error
}

// NewProvider constructs a Provider using the provided functional options.
// A best effort validation is performed; call IsValid / ValidationError for
// errors.
func NewProvider(baseURL string, options ...Option) *Provider {
	provider := &Provider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		plugins:      nil,
		metrics:      nil,
		logger:       nil,
		requestIDGen: uuid.NewString,
	}

	for _, option := range options {
		option(provider)
	}

	if err := provider.ValidateConfiguration(); err != nil {
		provider.validationError = err
	}

	return provider
}

// BaseURL returns the configured base URL.
func (p *Provider) BaseURL() string { return p.baseURL }

// IsValid reports whether configuration validation passed at construction.
func (p *Provider) IsValid() bool { return p.validationError == nil }

// ValidationError returns the configuration validation error, if any.
func (p *Provider) ValidationError() error { return p.validationError }

// PerformRequest executes the endpoint without blocking the caller. The
// pipeline is: build request, ModifyRequest plugins, WillPerformRequest
// plugins, dispatch, classify, DidPerformRequest plugins, onComplete.
// onComplete is invoked exactly once with either the decoded T or an
// *APIError[E], never on the caller's stack before PerformRequest returns.
func PerformRequest[T, E any](ctx context.Context, p *Provider, endpoint Endpoint, onComplete func(T, error)) {
	start := time.Now()

	var requestID string
	if p.logger != nil {
		requestID = p.requestIDGen()
	}

	req, buildErr := endpoint.BuildRequest(p.baseURL)
	if buildErr == nil {
		req = req.WithContext(ctx)

		for _, plugin := range p.plugins {
			plugin.ModifyRequest(req, endpoint)
		}
		for _, plugin := range p.plugins {
			plugin.WillPerformRequest(req, endpoint)
		}

		if p.logger != nil {
			p.logger.Debug().
				Str("requestID", requestID).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Msg("performing request")
		}
		if p.metrics != nil {
			p.metrics.RecordRequestStart(req.Method, endpointLabel(req))
		}
	} else if p.logger != nil {
		p.logger.Error().
			Str("requestID", requestID).
			Err(buildErr).
			Msg("building request failed")
	}

	go func() {
		var outcome RawOutcome
		if buildErr != nil {
			// The call never reached the wire; classification turns this
			// into a no-response-received error.
			outcome = RawOutcome{Err: buildErr}
		} else {
			outcome = p.execute(req)
		}

		value, err := classifyOutcome[T, E](outcome, endpoint.Decoder())

		result := TypedResult{Err: err}
		if err == nil {
			result.Value = value
		}
		for _, plugin := range p.plugins {
			plugin.DidPerformRequest(outcome, result, endpoint)
		}

		if buildErr == nil {
			p.recordCompletion(req, outcome, err, time.Since(start))
			if p.logger != nil {
				p.logRequestDone(requestID, outcome, err, time.Since(start))
			}
		}

		onComplete(value, err)
	}()
}

// PerformRequestAndWait executes the endpoint and blocks the calling
// goroutine until the typed result is available. It is a thin wrapper over
// PerformRequest via a one-shot channel and shares its entire pipeline.
func PerformRequestAndWait[T, E any](ctx context.Context, p *Provider, endpoint Endpoint) (T, error) {
	type completion struct {
		value T
		err   error
	}
	done := make(chan completion, 1)
	PerformRequest[T, E](ctx, p, endpoint, func(value T, err error) {
		done <- completion{value: value, err: err}
	})
	result := <-done
	return result.value, result.err
}

// PerformEmptyRequest is PerformRequest with the result type bound to
// EmptyBodyResponse, for endpoints whose response body is irrelevant.
func PerformEmptyRequest[E any](ctx context.Context, p *Provider, endpoint Endpoint, onComplete func(error)) {
	PerformRequest[EmptyBodyResponse, E](ctx, p, endpoint, func(_ EmptyBodyResponse, err error) {
		onComplete(err)
	})
}

// PerformEmptyRequestAndWait is the blocking variant of PerformEmptyRequest.
func PerformEmptyRequestAndWait[E any](ctx context.Context, p *Provider, endpoint Endpoint) error {
	_, err := PerformRequestAndWait[EmptyBodyResponse, E](ctx, p, endpoint)
	return err
}

// execute runs one wire request through the transport and produces the
// call's single RawOutcome, draining and closing the body.
func (p *Provider) execute(req *http.Request) RawOutcome {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return RawOutcome{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return RawOutcome{Response: resp, Err: readErr}
	}
	return RawOutcome{Body: body, Response: resp}
}

func (p *Provider) recordCompletion(req *http.Request, outcome RawOutcome, err error, duration time.Duration) {
	if p.metrics == nil {
		return
	}
	label := endpointLabel(req)
	p.metrics.RecordRequestEnd(req.Method, label)

	statusCode := 0
	if outcome.Response != nil {
		statusCode = outcome.Response.StatusCode
	}
	p.metrics.RecordRequest(req.Method, label, statusCode, duration)

	if kind, ok := ErrorKindOf(err); ok {
		p.metrics.RecordError(kind.String(), req.Method, label)
	}
}

func (p *Provider) logRequestDone(requestID string, outcome RawOutcome, err error, duration time.Duration) {
	event := p.logger.Debug().
		Str("requestID", requestID).
		Dur("duration", duration)
	if outcome.Response != nil {
		event = event.Int("statusCode", outcome.Response.StatusCode)
	}
	if err != nil {
		event.Err(err).Msg("request failed")
		return
	}
	event.Msg("request succeeded")
}

// endpointLabel derives a low-cardinality host+path label for metrics and
// logs from the built request.
func endpointLabel(req *http.Request) string {
	if req == nil || req.URL == nil {
		return "unknown"
	}

	host := req.URL.Host
	path := req.URL.Path

	var builder strings.Builder
	builder.WriteString(host)

	if path != "" && path != "/" {
		builder.WriteString(path)
	} else {
		builder.WriteByte('/')
	}

	return builder.String()
}
