package cassiopeia

import (
	"net/http"
	"time"

	"github.com/alexmerser/Cassiopeia/logger"
	"github.com/alexmerser/Cassiopeia/rate"
	"github.com/alexmerser/Cassiopeia/retry"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if callers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter replaces the rate meter the client would otherwise build
	// for the api key. Use rate.NoopLimiter to disable rate limiting.
	// default: nil (a rate.Meter for the key on the default registry)
	limiter rate.Limiter

	// rateRules registers a custom rule set for the api key.
	// Ignored when limiter is set.
	// default: nil (keep the key's existing rules, or rate.DefaultRules
	// for a key seen for the first time)
	rateRules []rate.Rule

	// rateRegistry holds the shared per-key rate state.
	// Ignored when limiter is set.
	// default: rate.DefaultRegistry()
	rateRegistry *rate.Registry

	// ratePollInterval is how long a blocked request sleeps between
	// headroom rechecks.
	// default: 10 milliseconds
	ratePollInterval time.Duration

	// retry configures the retry strategy for transient request
	// failures (network errors, 429, 5xx)
	// default: retry.NewExponentialRetry()
	retry retry.Retry

	// retryAttempts sets how many times a request is attempted.
	// 1 means no retries.
	// default: 1
	retryAttempts int
}

func defaultConfig() *config {
	return &config{
		transport:     http.DefaultTransport,
		timeout:       10 * time.Second,
		logger:        logger.Noop{},
		retryAttempts: 1,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithRateRules(rules []rate.Rule) ConfigOption {
	return func(c *config) {
		c.rateRules = rules
	}
}

func WithRateRegistry(registry *rate.Registry) ConfigOption {
	return func(c *config) {
		c.rateRegistry = registry
	}
}

func WithRatePollInterval(interval time.Duration) ConfigOption {
	return func(c *config) {
		c.ratePollInterval = interval
	}
}

func WithRetry(retry retry.Retry) ConfigOption {
	return func(c *config) {
		c.retry = retry
	}
}

func WithRetryAttempts(attempts int) ConfigOption {
	return func(c *config) {
		c.retryAttempts = attempts
	}
}
