package rate

import (
	"net/http"
	"time"
)

// Meter tracks accesses to the LoL API by a specific API key and limits
// the rate at which requests are made according to the key's rate rules.
//
// A Meter is a lightweight handle: the rule set and access history live
// in the Registry, keyed by API key, so every Meter for the same key on
// the same Registry observes and affects the same history.
type Meter struct {
	registry *Registry
	key      string
	now      func() time.Time
	poll     time.Duration
}

var _ Limiter = &Meter{}

type meterConfig struct {
	// registry holds the shared per-key state
	// default: DefaultRegistry()
	registry *Registry

	// rules to register for the key. Empty means: keep the existing
	// rules for a known key, or DefaultRules for a new one.
	// default: nil
	rules []Rule

	// now supplies the current instant; time.Now carries a monotonic
	// reading, which keeps age computations safe across wall-clock
	// adjustments
	// default: time.Now
	now func() time.Time

	// poll is how long a blocking Access sleeps between rechecks
	// default: 10 milliseconds
	poll time.Duration
}

func defaultMeterConfig() meterConfig {
	return meterConfig{
		registry: defaultRegistry,
		now:      time.Now,
		poll:     10 * time.Millisecond,
	}
}

type MeterOption func(c *meterConfig)

func WithRules(rules []Rule) MeterOption {
	return func(c *meterConfig) {
		c.rules = rules
	}
}

func WithRegistry(registry *Registry) MeterOption {
	return func(c *meterConfig) {
		c.registry = registry
	}
}

func WithClock(now func() time.Time) MeterOption {
	return func(c *meterConfig) {
		c.now = now
	}
}

func WithPollInterval(poll time.Duration) MeterOption {
	return func(c *meterConfig) {
		c.poll = poll
	}
}

// NewMeter binds a Meter to apiKey, registering the key first if it is
// new. Returns errors.ErrInvalidRates when a supplied rule set fails
// validation; the registry is left untouched in that case.
func NewMeter(apiKey string, opts ...MeterOption) (*Meter, error) {
	cfg := defaultMeterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.registry.register(apiKey, cfg.rules); err != nil {
		return nil, err
	}

	return &Meter{
		registry: cfg.registry,
		key:      apiKey,
		now:      cfg.now,
		poll:     cfg.poll,
	}, nil
}

// Check reports whether one more access right now would stay inside
// every rule for the key. It does not count as an access itself.
func (m *Meter) Check() bool {
	now := m.now()

	m.registry.mu.RLock()
	defer m.registry.mu.RUnlock()

	st := m.registry.keys[m.key]
	for _, rule := range st.rules {
		count := 0
		for _, ts := range st.timestamps {
			if now.Sub(ts) < rule.Window {
				count++
			}
		}
		if count >= rule.Limit {
			return false
		}
	}
	return true
}

// Access records one access to the API.
//
// With blocking set, Access sleeps and rechecks until every rule has
// headroom before recording. The registry lock is not held while
// sleeping, so checks and other keys are never blocked by the wait.
// Two callers that both pass the check may both record; the meter is
// advisory, not an admission gate with reservation.
//
// With blocking unset the access is recorded regardless of headroom.
// With clean set, expired timestamps are dropped before the append.
func (m *Meter) Access(blocking, clean bool) {
	if blocking {
		for !m.Check() {
			time.Sleep(m.poll)
		}
	}

	m.registry.mu.Lock()
	defer m.registry.mu.Unlock()

	st := m.registry.keys[m.key]
	if clean {
		st.clean(m.now())
	}
	st.timestamps = append(st.timestamps, m.now())
}

// CleanTimestamps drops every recorded timestamp older than the longest
// rule window for the key; no rule can reference them anymore.
func (m *Meter) CleanTimestamps() {
	m.registry.mu.Lock()
	defer m.registry.mu.Unlock()

	m.registry.keys[m.key].clean(m.now())
}

// Limit implements Limiter: it blocks until the key has headroom and
// records the access.
func (m *Meter) Limit(_ *http.Request) {
	m.Access(true, true)
}
