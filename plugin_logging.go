package microya

import (
	"net/http"

	"github.com/rs/zerolog"
)

// LoggingPlugin emits a structured log line immediately before dispatch and
// another once the typed result is known. It never alters the request or
// the outcome.
type LoggingPlugin struct {
	logger zerolog.Logger
}

// NewLoggingPlugin creates a LoggingPlugin writing to the given logger.
func NewLoggingPlugin(logger zerolog.Logger) *LoggingPlugin {
	return &LoggingPlugin{logger: logger}
}

// ModifyRequest implements Plugin.
func (l *LoggingPlugin) ModifyRequest(*http.Request, Endpoint) {}

// WillPerformRequest implements Plugin.
func (l *LoggingPlugin) WillPerformRequest(req *http.Request, _ Endpoint) {
	l.logger.Info().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("request dispatching")
}

// DidPerformRequest implements Plugin.
func (l *LoggingPlugin) DidPerformRequest(outcome RawOutcome, result TypedResult, _ Endpoint) {
	event := l.logger.Info()
	if outcome.Response != nil {
		event = event.Int("statusCode", outcome.Response.StatusCode)
	}
	if result.Failed() {
		event.Err(result.Err).Msg("request failed")
		return
	}
	event.Msg("request completed")
}
