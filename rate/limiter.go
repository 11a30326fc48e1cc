package rate

import "net/http"

// Limiter controls request rates to the LoL API.
//
// The Limiter interface lets the client throttle outgoing requests to
// stay inside Riot's per-key rate rules. The default implementation is
// Meter, a multi-window sliding log shared per API key, but callers can
// substitute their own strategy such as:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Leaky bucket algorithm
//
// The Limit method is called before each rate-limited request and should
// block if necessary to maintain the desired request rate. The
// implementation can use the request information (method, path, etc.)
// to apply different rate limits for different endpoints.
type Limiter interface {
	// Limit applies rate limiting to the given request, blocking the
	// caller until the request is allowed to proceed.
	Limit(req *http.Request)
}
