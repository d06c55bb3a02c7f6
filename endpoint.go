package microya

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// Endpoint describes one logical API operation with enough metadata to build
// a wire request against a provider's base URL. Implementations also name
// the codec used to decode both success and client-error bodies.
type Endpoint interface {
	// BuildRequest constructs the wire request for this operation. The
	// returned request is owned by the provider for the duration of the
	// call and may be mutated by plugins before dispatch.
	BuildRequest(baseURL string) (*http.Request, error)

	// Decoder returns the codec for this endpoint's response bodies.
	Decoder() Decoder
}

// JSONEndpoint is a ready-made Endpoint for JSON APIs. The zero value is a
// GET of the base URL; set fields as needed. Custom endpoint types only
// need to implement Endpoint themselves when request construction goes
// beyond method + path + query + headers + JSON body.
type JSONEndpoint struct {
	// Method defaults to GET when empty.
	Method string
	// Path is joined to the provider base URL, e.g. "/users/42".
	Path string
	// Query is appended to the URL when non-empty.
	Query url.Values
	// Headers are set on the built request.
	Headers http.Header
	// Body, when non-nil, is JSON-encoded as the request body and
	// Content-Type is set to application/json.
	Body any
}

// BuildRequest implements Endpoint.
func (e JSONEndpoint) BuildRequest(baseURL string) (*http.Request, error) {
	method := e.Method
	if method == "" {
		method = http.MethodGet
	}

	target := strings.TrimSuffix(baseURL, "/")
	if e.Path != "" {
		if !strings.HasPrefix(e.Path, "/") {
			target += "/"
		}
		target += e.Path
	}
	if len(e.Query) > 0 {
		target += "?" + e.Query.Encode()
	}

	var body io.Reader
	if e.Body != nil {
		data, err := json.Marshal(e.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil, err
	}

	for key, values := range e.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if e.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Decoder implements Endpoint.
func (e JSONEndpoint) Decoder() Decoder { return JSONDecoder{} }
