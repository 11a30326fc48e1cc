package parsers

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RateLimitInfo carries what the API reported about a key's rate
// consumption on a response. The server sends these headers alongside
// 429s (and rate-limited 200s), and callers can use them to reconcile
// a local rate.Meter with the server's view.
type RateLimitInfo struct {
	// Type distinguishes who exceeded the limit on a 429: "user" for
	// the API key, "service" for Riot's own backing services.
	Type string

	// RetryAfter is the server-suggested wait before retrying.
	// Zero when the header was absent.
	RetryAfter time.Duration

	// Counts holds per-window request counts as reported by
	// X-Rate-Limit-Count, e.g. "3:10,45:600".
	Counts []WindowCount
}

// WindowCount is one element of the X-Rate-Limit-Count header:
// Requests issued within the trailing Window.
type WindowCount struct {
	Requests int
	Window   time.Duration
}

func RateLimitInfoFromResponse(res *http.Response) (RateLimitInfo, bool) {
	if res == nil {
		return RateLimitInfo{}, false
	}
	return RateLimitInfoFromHeader(res.Header)
}

func RateLimitInfoFromHeader(h http.Header) (RateLimitInfo, bool) {
	info := RateLimitInfo{
		Type: h.Get("X-Rate-Limit-Type"),
	}
	found := info.Type != ""

	if v := h.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			info.RetryAfter = time.Duration(secs) * time.Second
			found = true
		}
	}

	if v := h.Get("X-Rate-Limit-Count"); v != "" {
		if counts, ok := parseCounts(v); ok {
			info.Counts = counts
			found = true
		}
	}

	return info, found
}

func parseCounts(v string) ([]WindowCount, bool) {
	parts := strings.Split(v, ",")
	counts := make([]WindowCount, 0, len(parts))
	for _, part := range parts {
		pair := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(pair) != 2 {
			return nil, false
		}
		requests, err := strconv.Atoi(pair[0])
		if err != nil {
			return nil, false
		}
		secs, err := strconv.Atoi(pair[1])
		if err != nil {
			return nil, false
		}
		counts = append(counts, WindowCount{
			Requests: requests,
			Window:   time.Duration(secs) * time.Second,
		})
	}
	return counts, true
}
