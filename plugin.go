package microya

import (
	"net/http"
)

// HeaderPlugin injects a fixed header set into every request before
// dispatch, e.g. authorization tokens or a custom user agent. Existing
// request headers with the same name are overwritten.
type HeaderPlugin struct {
	NopPlugin
	headers http.Header
}

// NewHeaderPlugin creates a HeaderPlugin from the given headers. The header
// map is copied, so later mutation of the argument has no effect.
func NewHeaderPlugin(headers http.Header) *HeaderPlugin {
	copied := make(http.Header, len(headers))
	for key, values := range headers {
		copied[key] = append([]string(nil), values...)
	}
	return &HeaderPlugin{headers: copied}
}

// ModifyRequest implements Plugin.
func (h *HeaderPlugin) ModifyRequest(req *http.Request, _ Endpoint) {
	for key, values := range h.headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
}
