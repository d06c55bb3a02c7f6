package microya

import (
	"net/http"

	"github.com/google/uuid"
)

// DefaultRequestIDHeader is the header written by RequestIDPlugin.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestIDPlugin stamps every outgoing request with a unique ID header so
// calls can be correlated across services. A request that already carries
// the header keeps its value.
type RequestIDPlugin struct {
	NopPlugin
	header   string
	generate func() string
}

// NewRequestIDPlugin creates a plugin writing UUIDs to X-Request-ID.
func NewRequestIDPlugin() *RequestIDPlugin {
	return &RequestIDPlugin{header: DefaultRequestIDHeader, generate: uuid.NewString}
}

// NewRequestIDPluginWithGenerator creates a plugin writing IDs from gen to
// the given header.
func NewRequestIDPluginWithGenerator(header string, gen func() string) *RequestIDPlugin {
	return &RequestIDPlugin{header: header, generate: gen}
}

// ModifyRequest implements Plugin.
func (r *RequestIDPlugin) ModifyRequest(req *http.Request, _ Endpoint) {
	if req.Header.Get(r.header) == "" {
		req.Header.Set(r.header, r.generate())
	}
}
