package microya

import (
	"net/http"
)

// HTTPClient is the transport interface used to execute wire requests.
// *http.Client satisfies it; tests substitute stubs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawOutcome is the untyped result of executing one wire request. It is
// produced exactly once per call by the transport and is immutable after
// creation. At most one of Response/Err describes the terminal state: a
// non-nil Err always wins during classification, even if a partial
// Response is present.
type RawOutcome struct {
	// Body holds the fully drained response body, nil when none was read.
	Body []byte
	// Response is the raw HTTP response, nil when the transport failed.
	Response *http.Response
	// Err is the transport-level failure (DNS, timeout, connection reset),
	// or a request build failure when the call never reached the wire.
	Err error
}

// TypedResult is the type-erased view of a call's terminal value, handed to
// DidPerformRequest plugins. Exactly one of Value/Err is set.
type TypedResult struct {
	// Value is the decoded success value (or EmptyBodyResponse{}).
	Value any
	// Err is the *APIError the caller will receive, nil on success.
	Err error
}

// Failed reports whether the call ended in an APIError.
func (r TypedResult) Failed() bool { return r.Err != nil }

// EmptyBodyResponse is the sentinel result type for endpoints that produce
// no meaningful response body. When a call expects it, response bytes are
// never decoded: a 2xx succeeds immediately and a 4xx fails without a
// parsed client error.
type EmptyBodyResponse struct{}

// Plugin observes and shapes a single request at three fixed lifecycle
// points. Plugins run synchronously in registration order and must never
// alter the call outcome; the chain is fixed at provider construction.
// Embed NopPlugin to implement only the methods you care about.
type Plugin interface {
	// ModifyRequest may mutate the request in place (e.g. inject headers).
	// It runs once per call, before dispatch.
	ModifyRequest(req *http.Request, endpoint Endpoint)

	// WillPerformRequest observes the finalized request immediately before
	// dispatch. Read-only.
	WillPerformRequest(req *http.Request, endpoint Endpoint)

	// DidPerformRequest observes both the raw transport outcome and the
	// typed result, after classification and before delivery. Read-only.
	DidPerformRequest(outcome RawOutcome, result TypedResult, endpoint Endpoint)
}

// NopPlugin implements Plugin with no-op methods for embedding.
type NopPlugin struct{}

func (NopPlugin) ModifyRequest(*http.Request, Endpoint)               {}
func (NopPlugin) WillPerformRequest(*http.Request, Endpoint)          {}
func (NopPlugin) DidPerformRequest(RawOutcome, TypedResult, Endpoint) {}

// Option represents a configuration option for a Provider.
type Option func(*Provider)
