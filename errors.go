package microya

import (
	"fmt"
	"net/http"
)

// ErrorKind tags the failure variant carried by an APIError. The set is
// closed: classification produces exactly one of these kinds or a success
// value, never anything else.
type ErrorKind int

const (
	// KindNoResponseReceived covers transport failures (DNS, timeout,
	// connection reset), request build failures and absent responses.
	KindNoResponseReceived ErrorKind = iota
	// KindUnexpectedResponseType marks a response that is not a
	// well-formed HTTP response (garbage status line).
	KindUnexpectedResponseType
	// KindNoDataInResponse marks a success or client-error status with an
	// empty body where one was required.
	KindNoDataInResponse
	// KindResponseDataConversionFailed marks a success-band body that
	// failed to decode into the expected type.
	KindResponseDataConversionFailed
	// KindClientError covers the 400-499 band, with the error body parsed
	// best effort.
	KindClientError
	// KindServerError covers the 500-599 band; the body is never inspected.
	KindServerError
	// KindUnexpectedStatusCode covers every remaining status code (1xx,
	// unresolved redirects, out-of-range values).
	KindUnexpectedStatusCode
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindNoResponseReceived:
		return "NoResponseReceived"
	case KindUnexpectedResponseType:
		return "UnexpectedResponseType"
	case KindNoDataInResponse:
		return "NoDataInResponse"
	case KindResponseDataConversionFailed:
		return "ResponseDataConversionFailed"
	case KindClientError:
		return "ClientError"
	case KindServerError:
		return "ServerError"
	case KindUnexpectedStatusCode:
		return "UnexpectedStatusCode"
	default:
		return "Unknown"
	}
}

// APIError is the typed failure of one call. Kind selects the variant; the
// remaining fields carry only that variant's documented payload. E is the
// endpoint's client-error body type, populated best effort for the 4xx band.
type APIError[E any] struct {
	// Kind is the taxonomy tag.
	Kind ErrorKind
	// StatusCode is set for NoDataInResponse, ClientError, ServerError and
	// UnexpectedStatusCode.
	StatusCode int
	// Cause is the underlying transport error (NoResponseReceived) or
	// codec error (ResponseDataConversionFailed), when one exists.
	Cause error
	// TypeName names the expected type for ResponseDataConversionFailed.
	TypeName string
	// RawResponse is the malformed response for UnexpectedResponseType.
	RawResponse *http.Response
	// ClientError is the parsed 4xx body, nil when none was expected or
	// the body failed to parse.
	ClientError *E
}

// Error implements error.
func (e *APIError[E]) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindNoResponseReceived:
		if e.Cause != nil {
			return fmt.Sprintf("microya: no response received (%v)", e.Cause)
		}
		return "microya: no response received"
	case KindUnexpectedResponseType:
		return "microya: response is not a valid HTTP response"
	case KindNoDataInResponse:
		return fmt.Sprintf("microya: no data in response (status %d)", e.StatusCode)
	case KindResponseDataConversionFailed:
		return fmt.Sprintf("microya: could not decode response into %s (%v)", e.TypeName, e.Cause)
	case KindClientError:
		if e.ClientError != nil {
			return fmt.Sprintf("microya: client error (status %d, parsed body)", e.StatusCode)
		}
		return fmt.Sprintf("microya: client error (status %d)", e.StatusCode)
	case KindServerError:
		return fmt.Sprintf("microya: server error (status %d)", e.StatusCode)
	case KindUnexpectedStatusCode:
		return fmt.Sprintf("microya: unexpected status code %d", e.StatusCode)
	default:
		return fmt.Sprintf("microya: unknown error kind %d", e.Kind)
	}
}

// Unwrap returns the underlying cause.
func (e *APIError[E]) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error kinds for errors.Is.
func (e *APIError[E]) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*APIError[E]); ok {
		return e.Kind == targetErr.Kind
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *APIError[E]) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Kind: %s\n", e.Kind)
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if e.TypeName != "" {
		info += fmt.Sprintf("Expected Type: %s\n", e.TypeName)
	}
	if e.ClientError != nil {
		info += fmt.Sprintf("Client Error Body: %+v\n", *e.ClientError)
	}
	if e.RawResponse != nil {
		info += fmt.Sprintf("Raw Response: %v\n", e.RawResponse)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

// errorKind gives type-erased access to the taxonomy tag so helpers work
// without knowing E.
func (e *APIError[E]) errorKind() (ErrorKind, int) {
	return e.Kind, e.StatusCode
}

type kindedError interface {
	errorKind() (ErrorKind, int)
}

// ErrorKindOf extracts the taxonomy kind from an error returned by this
// package. ok is false for nil and foreign errors.
func ErrorKindOf(err error) (kind ErrorKind, ok bool) {
	ke, ok := err.(kindedError)
	if !ok {
		return 0, false
	}
	kind, _ = ke.errorKind()
	return kind, true
}

// StatusCodeOf extracts the HTTP status code from an error returned by this
// package. ok is false when the error carries no status.
func StatusCodeOf(err error) (status int, ok bool) {
	ke, ok := err.(kindedError)
	if !ok {
		return 0, false
	}
	_, status = ke.errorKind()
	return status, status > 0
}

// IsClientError reports whether err is a 4xx-band APIError.
func IsClientError(err error) bool {
	kind, ok := ErrorKindOf(err)
	return ok && kind == KindClientError
}

// IsServerError reports whether err is a 5xx-band APIError.
func IsServerError(err error) bool {
	kind, ok := ErrorKindOf(err)
	return ok && kind == KindServerError
}
