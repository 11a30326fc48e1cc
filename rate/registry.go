package rate

import (
	"sync"
	"time"
)

// Registry owns the rate state for a set of API keys. Every Meter
// constructed against the same Registry and key operates on one shared
// rule set and one shared access history, so multiple goroutines (or
// multiple Meter instances) using the same key are throttled as a unit.
//
// Meters constructed without WithRegistry share a single process-wide
// default registry. Tests that need isolation construct their own.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]*keyState
}

type keyState struct {
	rules     []Rule
	maxWindow time.Duration

	// timestamps is kept in chronological order; entries are only ever
	// appended, and cleanup retains a subsequence.
	timestamps []time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		keys: make(map[string]*keyState),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry backing meters that
// were constructed without an explicit one.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// register creates or updates the state for key. An empty rules slice
// binds to the existing state when the key is known, and falls back to
// DefaultRules when it is not. Supplied rules replace the previous set
// after validation, but the recorded history is always carried over.
func (g *Registry) register(key string, rules []Rule) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	prev, known := g.keys[key]
	if known && len(rules) == 0 {
		return nil
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if err := validateRules(rules); err != nil {
		return err
	}

	next := &keyState{
		rules:     append([]Rule(nil), rules...),
		maxWindow: longestWindow(rules),
	}
	if known {
		next.timestamps = prev.timestamps
	}
	g.keys[key] = next
	return nil
}

func longestWindow(rules []Rule) time.Duration {
	var longest time.Duration
	for _, r := range rules {
		if r.Window > longest {
			longest = r.Window
		}
	}
	return longest
}

// clean drops every timestamp older than the longest rule window. Must
// be called with the registry lock held. The retained suffix is written
// back over the same backing array, preserving order.
func (st *keyState) clean(now time.Time) {
	kept := st.timestamps[:0]
	for _, ts := range st.timestamps {
		if now.Sub(ts) < st.maxWindow {
			kept = append(kept, ts)
		}
	}
	st.timestamps = kept
}
