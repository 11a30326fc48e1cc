package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathStatsRanked  = "/api/lol/{region}/v1.3/stats/by-summoner/{summonerId}/ranked"
	pathStatsSummary = "/api/lol/{region}/v1.3/stats/by-summoner/{summonerId}/summary"
)

// Stats implements the stats-v1.3 API methods.
type Stats struct {
	api *apiClient
}

func NewStatsApi(cfg Config) *Stats {
	return &Stats{
		api: newApiClient(cfg),
	}
}

// Ranked returns per-champion ranked stats for the summoner. season
// selects a specific season (e.g. "SEASON4"); empty means the current one.
func (s *Stats) Ranked(summonerId int64, season string) (*types.RankedStats, error) {
	params := url.Values{}
	if season != "" {
		params.Add("season", season)
	}
	var res types.RankedStats
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathStatsRanked, "{summonerId}", fmt.Sprint(summonerId), 1)),
		params, true, &res,
	))
}

// Summary returns per-queue stat summaries for the summoner.
func (s *Stats) Summary(summonerId int64, season string) (*types.PlayerStatsSummaryList, error) {
	params := url.Values{}
	if season != "" {
		params.Add("season", season)
	}
	var res types.PlayerStatsSummaryList
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathStatsSummary, "{summonerId}", fmt.Sprint(summonerId), 1)),
		params, true, &res,
	))
}
