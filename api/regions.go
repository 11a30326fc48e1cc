package api

import (
	"github.com/alexmerser/Cassiopeia/errors"
)

// Regions maps supported region codes to their API hosts.
var Regions = map[string]string{
	"br":   "br.api.pvp.net",
	"eune": "eune.api.pvp.net",
	"euw":  "euw.api.pvp.net",
	"kr":   "kr.api.pvp.net",
	"lan":  "las.api.pvp.net",
	"las":  "las.api.pvp.net",
	"na":   "na.api.pvp.net",
	"oce":  "oce.api.pvp.net",
	"ru":   "ru.api.pvp.net",
	"tr":   "tr.api.pvp.net",
}

// Host resolves a region code to its API host. Returns
// errors.ErrInvalidServerRegion for codes outside the table.
func Host(region string) (string, error) {
	host, ok := Regions[region]
	if !ok {
		return "", errors.ErrInvalidServerRegion
	}
	return host, nil
}
