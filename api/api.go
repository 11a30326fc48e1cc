package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexmerser/Cassiopeia/errors"
	"github.com/alexmerser/Cassiopeia/logger"
	"github.com/alexmerser/Cassiopeia/rate"
	"github.com/alexmerser/Cassiopeia/retry"
	"github.com/alexmerser/Cassiopeia/types"
)

// Config carries the collaborators shared by every resource API:
// the key and region to query, the transport, and the rate/retry
// machinery that wraps each request.
type Config struct {
	ApiKey     string
	Region     string
	HttpClient *http.Client
	Logger     logger.Logger

	// Limiter is consulted before every rate-limited request.
	// Use rate.NoopLimiter to disable limiting entirely.
	Limiter rate.Limiter

	// Retry and RetryAttempts control retries of transient failures
	// (network errors, 429 and 5xx responses). One attempt means no
	// retry, matching the behavior of a bare request.
	Retry         retry.Retry
	RetryAttempts int
}

type apiClient struct {
	apiKey     string
	region     string
	host       string
	httpClient *http.Client
	logger     logger.Logger
	limiter    rate.Limiter
	retry      retry.Retry
	attempts   int
}

func newApiClient(cfg Config) *apiClient {
	log := cfg.Logger
	if log == nil {
		log = logger.Noop{}
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NoopLimiter{}
	}
	r := cfg.Retry
	if r == nil {
		r = retry.NewExponentialRetry(retry.WithLogger(log))
	}
	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &apiClient{
		apiKey:     cfg.ApiKey,
		region:     cfg.Region,
		host:       Regions[cfg.Region],
		httpClient: cfg.HttpClient,
		logger:     log,
		limiter:    limiter,
		retry:      r,
		attempts:   attempts,
	}
}

// regionPath expands the {region} placeholder in a path template.
func (c *apiClient) regionPath(path string) string {
	return strings.Replace(path, "{region}", c.region, 1)
}

// getJson issues a GET for path, retrying transient failures, and
// decodes the JSON response into resData. The api_key is always sent as
// a query parameter. With rateLimited set, the configured limiter is
// consulted (and may block) before each attempt.
func (c *apiClient) getJson(
	path string,
	params url.Values,
	rateLimited bool,
	resData any,
) *errors.ApiError {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	endpoint := "https://" + c.host + path + "?" + params.Encode()

	var apiErr *errors.ApiError
	_ = c.retry.Do(c.attempts, "GET "+path, func(attempt int) (error, retry.ExitStrategy) {
		apiErr = c.get(endpoint, rateLimited, resData)
		if apiErr == nil {
			return nil, retry.StopNow
		}
		if retriable(apiErr) {
			return apiErr, retry.Continue
		}
		return apiErr, retry.StopNow
	})
	return apiErr
}

func (c *apiClient) get(endpoint string, rateLimited bool, resData any) *errors.ApiError {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}
	req.Header.Set("Accept", "application/json")

	if rateLimited {
		c.limiter.Limit(req)
	}

	c.logger.Debugf("GET %s", req.URL.Path)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	if res.StatusCode != http.StatusOK {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			defer func() { _ = res.Body.Close() }()
		}
		apiErr := &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
		if len(body) > 0 {
			var envelope types.StatusEnvelope
			if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil {
				apiErr.RiotStatusMessage = envelope.Status.Message
			}
		}
		return apiErr
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	if jsonErr := json.Unmarshal(body, resData); jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

func retriable(err *errors.ApiError) bool {
	if err.Type == errors.TYPE_IO {
		return true
	}
	return err.HttpStatusCode == http.StatusTooManyRequests ||
		err.HttpStatusCode >= http.StatusInternalServerError
}

// notFound reports whether err is the API's "no such resource" answer,
// which lookup methods surface as a found=false result instead of an error.
func notFound(err *errors.ApiError) bool {
	return err != nil && err.HttpStatusCode == http.StatusNotFound
}

// joinIds renders ids as the comma-separated list the bulk endpoints
// embed in their path.
func joinIds(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
