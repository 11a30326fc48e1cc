package cassiopeia

import (
	"net/http"

	"github.com/alexmerser/Cassiopeia/api"
	"github.com/alexmerser/Cassiopeia/rate"
	"github.com/alexmerser/Cassiopeia/retry"
)

type Client struct {
	httpClient *http.Client
	limiter    rate.Limiter

	champions  *api.Champions
	games      *api.Games
	leagues    *api.Leagues
	stats      *api.Stats
	summoners  *api.Summoners
	teams      *api.Teams
	staticData *api.StaticData
}

// NewClient builds a client for one api key and region. Requests are
// rate limited per key: every client (and every goroutine) using the
// same key shares one access history, so they are throttled as a unit.
//
// Returns errors.ErrInvalidServerRegion for a region outside
// api.Regions, and errors.ErrInvalidRates when WithRateRules supplies
// an invalid rule set.
func NewClient(apiKey string, region string, opts ...ConfigOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if _, err := api.Host(region); err != nil {
		return nil, err
	}

	limiter := cfg.limiter
	if limiter == nil {
		var meterOpts []rate.MeterOption
		if cfg.rateRegistry != nil {
			meterOpts = append(meterOpts, rate.WithRegistry(cfg.rateRegistry))
		}
		if cfg.rateRules != nil {
			meterOpts = append(meterOpts, rate.WithRules(cfg.rateRules))
		}
		if cfg.ratePollInterval > 0 {
			meterOpts = append(meterOpts, rate.WithPollInterval(cfg.ratePollInterval))
		}
		meter, err := rate.NewMeter(apiKey, meterOpts...)
		if err != nil {
			return nil, err
		}
		limiter = meter
	}

	retrier := cfg.retry
	if retrier == nil {
		retrier = retry.NewExponentialRetry(retry.WithLogger(cfg.logger))
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	apiCfg := api.Config{
		ApiKey:        apiKey,
		Region:        region,
		HttpClient:    httpClient,
		Logger:        cfg.logger,
		Limiter:       limiter,
		Retry:         retrier,
		RetryAttempts: cfg.retryAttempts,
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		champions:  api.NewChampionApi(apiCfg),
		games:      api.NewGameApi(apiCfg),
		leagues:    api.NewLeagueApi(apiCfg),
		stats:      api.NewStatsApi(apiCfg),
		summoners:  api.NewSummonerApi(apiCfg),
		teams:      api.NewTeamApi(apiCfg),
		staticData: api.NewStaticDataApi(apiCfg),
	}, nil
}

func (c *Client) Champions() *api.Champions {
	return c.champions
}

func (c *Client) Games() *api.Games {
	return c.games
}

func (c *Client) Leagues() *api.Leagues {
	return c.leagues
}

func (c *Client) Stats() *api.Stats {
	return c.stats
}

func (c *Client) Summoners() *api.Summoners {
	return c.summoners
}

func (c *Client) Teams() *api.Teams {
	return c.teams
}

func (c *Client) StaticData() *api.StaticData {
	return c.staticData
}

// RateLimiter returns the limiter guarding this client's requests.
func (c *Client) RateLimiter() rate.Limiter {
	return c.limiter
}
