// Package microya provides a typed HTTP API client built around declarative
// endpoint descriptions:
//
//   - Endpoints describe a logical operation (method, path, body, codec) and
//     build their own wire requests against a provider's base URL
//   - A plugin chain observes and shapes requests at fixed lifecycle points
//     (mutate before dispatch, observe before dispatch, observe the outcome)
//   - Raw transport outcomes are classified into a closed set of typed
//     results — decoded success values or a tagged APIError — so callers
//     branch on failure kind instead of re‑inspecting bytes
//   - Both callback‑based (non‑blocking) and blocking call styles share a
//     single pipeline
//   - Prometheus metrics and zerolog structured logging are available via
//     functional options
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Exactly one typed result per call, success or taxonomy error
//   - Safe concurrent use of a single *Provider instance
//   - Extensibility via user supplied plugins & pluggable transport / codec
//
// Typical usage:
//
//	provider := microya.NewProvider("https://api.example.com",
//	    microya.WithPlugins(microya.NewRequestIDPlugin()),
//	    microya.WithMetrics(),
//	)
//	user, err := microya.PerformRequestAndWait[User, APIProblem](ctx, provider, userEndpoint{id: 42})
//
// Client error bodies (4xx) are decoded best effort: a malformed error body
// never masks the client error itself. Server errors (5xx) never touch the
// codec. Provide a zerolog logger via WithLogger for per call debug insight
// without noise.
package microya
