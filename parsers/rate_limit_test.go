package parsers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_RateLimitInfoFromHeader(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		expectInfo RateLimitInfo
		expectOk   bool
	}{
		{
			name: "full 429 header set",
			headers: map[string]string{
				"X-Rate-Limit-Type":  "user",
				"Retry-After":        "3",
				"X-Rate-Limit-Count": "11:10,45:600",
			},
			expectInfo: RateLimitInfo{
				Type:       "user",
				RetryAfter: 3 * time.Second,
				Counts: []WindowCount{
					{Requests: 11, Window: 10 * time.Second},
					{Requests: 45, Window: 600 * time.Second},
				},
			},
			expectOk: true,
		},
		{
			name: "count header only",
			headers: map[string]string{
				"X-Rate-Limit-Count": "3:10",
			},
			expectInfo: RateLimitInfo{
				Counts: []WindowCount{{Requests: 3, Window: 10 * time.Second}},
			},
			expectOk: true,
		},
		{
			name: "service throttle without counts",
			headers: map[string]string{
				"X-Rate-Limit-Type": "service",
				"Retry-After":       "0",
			},
			expectInfo: RateLimitInfo{Type: "service"},
			expectOk:   true,
		},
		{
			name:     "no rate headers",
			headers:  map[string]string{"Content-Type": "application/json"},
			expectOk: false,
		},
		{
			name: "malformed count header",
			headers: map[string]string{
				"X-Rate-Limit-Count": "not-a-count",
			},
			expectOk: false,
		},
		{
			name: "malformed retry after",
			headers: map[string]string{
				"Retry-After": "soon",
			},
			expectOk: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}

			info, ok := RateLimitInfoFromHeader(h)
			assert.Equal(t, tt.expectOk, ok)
			if tt.expectOk {
				assert.Equal(t, tt.expectInfo, info)
			}
		})
	}
}

func Test_RateLimitInfoFromResponse(t *testing.T) {
	_, ok := RateLimitInfoFromResponse(nil)
	assert.False(t, ok)

	res := &http.Response{Header: http.Header{}}
	res.Header.Set("Retry-After", "2")
	info, ok := RateLimitInfoFromResponse(res)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Second, info.RetryAfter)
}
