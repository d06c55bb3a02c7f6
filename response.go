package microya

import (
	"fmt"
)

// classifyOutcome maps one raw transport outcome to exactly one typed
// result: the decoded T on success, or a single *APIError[E] from the
// closed taxonomy. T may be EmptyBodyResponse to mark that no body is
// expected; E is the endpoint's client-error body type.
//
// The branches are evaluated strictly in order: transport error, absent
// response, malformed response, then the status bands [200,300), [400,500)
// and [500,600), with everything else an unexpected status code. There is
// no fallthrough producing neither success nor error.
func classifyOutcome[T, E any](outcome RawOutcome, decoder Decoder) (T, error) {
	var zero T

	// A transport error wins over everything, even a partially present
	// response from a misbehaving adapter.
	if outcome.Err != nil {
		return zero, &APIError[E]{Kind: KindNoResponseReceived, Cause: outcome.Err}
	}
	if outcome.Response == nil {
		return zero, &APIError[E]{Kind: KindNoResponseReceived}
	}

	code := outcome.Response.StatusCode
	if code < 100 || code >= 1000 {
		// Not a parseable HTTP status line at all.
		return zero, &APIError[E]{Kind: KindUnexpectedResponseType, RawResponse: outcome.Response}
	}

	_, emptyExpected := any(zero).(EmptyBodyResponse)

	switch {
	case code >= 200 && code < 300:
		if emptyExpected {
			// Any bytes are ignored entirely.
			return zero, nil
		}
		if len(outcome.Body) == 0 {
			return zero, &APIError[E]{Kind: KindNoDataInResponse, StatusCode: code}
		}
		var value T
		if err := decoder.Decode(outcome.Body, &value); err != nil {
			return zero, &APIError[E]{
				Kind:     KindResponseDataConversionFailed,
				TypeName: fmt.Sprintf("%T", value),
				Cause:    err,
			}
		}
		return value, nil

	case code >= 400 && code < 500:
		if emptyExpected {
			// No body was expected, so none is parsed.
			return zero, &APIError[E]{Kind: KindClientError, StatusCode: code}
		}
		if len(outcome.Body) == 0 {
			return zero, &APIError[E]{Kind: KindNoDataInResponse, StatusCode: code}
		}
		// Best effort: a malformed error body must never mask the client
		// error itself, so the decode error is swallowed.
		var clientErr E
		if err := decoder.Decode(outcome.Body, &clientErr); err != nil {
			return zero, &APIError[E]{Kind: KindClientError, StatusCode: code}
		}
		return zero, &APIError[E]{Kind: KindClientError, StatusCode: code, ClientError: &clientErr}

	case code >= 500 && code < 600:
		// The body is never inspected, even if present.
		return zero, &APIError[E]{Kind: KindServerError, StatusCode: code}

	default:
		return zero, &APIError[E]{Kind: KindUnexpectedStatusCode, StatusCode: code}
	}
}
