package microya

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIErrorMessages(t *testing.T) {
	cause := errors.New("connection refused")
	parsed := testAPIProblem{Code: "not_found"}

	testCases := []struct {
		name     string
		err      *APIError[testAPIProblem]
		expected string
	}{
		{
			"no response without cause",
			&APIError[testAPIProblem]{Kind: KindNoResponseReceived},
			"microya: no response received",
		},
		{
			"no response with cause",
			&APIError[testAPIProblem]{Kind: KindNoResponseReceived, Cause: cause},
			"microya: no response received (connection refused)",
		},
		{
			"unexpected response type",
			&APIError[testAPIProblem]{Kind: KindUnexpectedResponseType},
			"microya: response is not a valid HTTP response",
		},
		{
			"no data",
			&APIError[testAPIProblem]{Kind: KindNoDataInResponse, StatusCode: 204},
			"microya: no data in response (status 204)",
		},
		{
			"conversion failed",
			&APIError[testAPIProblem]{Kind: KindResponseDataConversionFailed, TypeName: "microya.testUser", Cause: errors.New("bad json")},
			"microya: could not decode response into microya.testUser (bad json)",
		},
		{
			"client error bare",
			&APIError[testAPIProblem]{Kind: KindClientError, StatusCode: 404},
			"microya: client error (status 404)",
		},
		{
			"client error parsed",
			&APIError[testAPIProblem]{Kind: KindClientError, StatusCode: 404, ClientError: &parsed},
			"microya: client error (status 404, parsed body)",
		},
		{
			"server error",
			&APIError[testAPIProblem]{Kind: KindServerError, StatusCode: 503},
			"microya: server error (status 503)",
		},
		{
			"unexpected status code",
			&APIError[testAPIProblem]{Kind: KindUnexpectedStatusCode, StatusCode: 301},
			"microya: unexpected status code 301",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("original error")
	err := &APIError[testAPIProblem]{Kind: KindNoResponseReceived, Cause: cause}

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Expected unwrapped error to be %v, got %v", cause, unwrapped)
	}

	bare := &APIError[testAPIProblem]{Kind: KindServerError, StatusCode: 500}
	if unwrapped := bare.Unwrap(); unwrapped != nil {
		t.Errorf("Expected unwrapped error to be nil, got %v", unwrapped)
	}
}

func TestAPIErrorIsComparesKinds(t *testing.T) {
	err := &APIError[testAPIProblem]{Kind: KindClientError, StatusCode: 404}
	sameKind := &APIError[testAPIProblem]{Kind: KindClientError, StatusCode: 400}
	otherKind := &APIError[testAPIProblem]{Kind: KindServerError, StatusCode: 500}

	if !errors.Is(err, sameKind) {
		t.Error("Expected errors of the same kind to match")
	}
	if errors.Is(err, otherKind) {
		t.Error("Expected errors of different kinds not to match")
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindNoResponseReceived:           "NoResponseReceived",
		KindUnexpectedResponseType:       "UnexpectedResponseType",
		KindNoDataInResponse:             "NoDataInResponse",
		KindResponseDataConversionFailed: "ResponseDataConversionFailed",
		KindClientError:                  "ClientError",
		KindServerError:                  "ServerError",
		KindUnexpectedStatusCode:         "UnexpectedStatusCode",
	}
	for kind, expected := range kinds {
		if kind.String() != expected {
			t.Errorf("Expected %q, got %q", expected, kind.String())
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	clientErr := error(&APIError[testAPIProblem]{Kind: KindClientError, StatusCode: 404})
	serverErr := error(&APIError[testAPIProblem]{Kind: KindServerError, StatusCode: 500})
	foreign := errors.New("not ours")

	if !IsClientError(clientErr) || IsClientError(serverErr) || IsClientError(foreign) {
		t.Error("IsClientError misclassified")
	}
	if !IsServerError(serverErr) || IsServerError(clientErr) || IsServerError(foreign) {
		t.Error("IsServerError misclassified")
	}

	if kind, ok := ErrorKindOf(clientErr); !ok || kind != KindClientError {
		t.Errorf("Expected (KindClientError, true), got (%v, %v)", kind, ok)
	}
	if _, ok := ErrorKindOf(foreign); ok {
		t.Error("Expected foreign errors to report no kind")
	}
	if _, ok := ErrorKindOf(nil); ok {
		t.Error("Expected nil to report no kind")
	}

	if status, ok := StatusCodeOf(serverErr); !ok || status != 500 {
		t.Errorf("Expected (500, true), got (%d, %v)", status, ok)
	}
	noStatus := error(&APIError[testAPIProblem]{Kind: KindNoResponseReceived})
	if _, ok := StatusCodeOf(noStatus); ok {
		t.Error("Expected no status for NoResponseReceived")
	}
}

func TestAPIErrorDebugInfo(t *testing.T) {
	parsed := testAPIProblem{Code: "not_found", Message: "gone"}
	err := &APIError[testAPIProblem]{
		Kind:        KindClientError,
		StatusCode:  404,
		ClientError: &parsed,
	}

	info := err.DebugInfo()
	for _, fragment := range []string{"Error Kind: ClientError", "Status Code: 404", "not_found"} {
		if !strings.Contains(info, fragment) {
			t.Errorf("Expected DebugInfo to contain %q, got:\n%s", fragment, info)
		}
	}

	var nilErr *APIError[testAPIProblem]
	if nilErr.DebugInfo() != "Error: <nil>" {
		t.Errorf("Expected nil DebugInfo sentinel, got %q", nilErr.DebugInfo())
	}
}
