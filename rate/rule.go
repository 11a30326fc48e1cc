package rate

import (
	"time"

	"github.com/alexmerser/Cassiopeia/errors"
)

// Rule bounds access to "at most Limit requests within any trailing
// Window duration".
type Rule struct {
	Limit  int
	Window time.Duration
}

// DefaultRules returns the rate policy Riot applies to development API
// keys: 10 requests per 10 seconds and 500 requests per 10 minutes.
// A fresh slice is returned on every call so registrations never share
// a backing array.
func DefaultRules() []Rule {
	return []Rule{
		{Limit: 10, Window: 10 * time.Second},
		{Limit: 500, Window: 10 * time.Minute},
	}
}

func validateRules(rules []Rule) error {
	if len(rules) == 0 {
		return errors.ErrInvalidRates
	}
	for _, r := range rules {
		if r.Limit < 1 || r.Window <= 0 {
			return errors.ErrInvalidRates
		}
	}
	return nil
}
