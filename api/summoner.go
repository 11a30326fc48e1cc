package api

import (
	"net/url"
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathSummonerByName    = "/api/lol/{region}/v1.4/summoner/by-name/{summonerNames}"
	pathSummonerByIds     = "/api/lol/{region}/v1.4/summoner/{summonerIds}"
	pathSummonerNames     = "/api/lol/{region}/v1.4/summoner/{summonerIds}/name"
	pathSummonerMasteries = "/api/lol/{region}/v1.4/summoner/{summonerIds}/masteries"
	pathSummonerRunes     = "/api/lol/{region}/v1.4/summoner/{summonerIds}/runes"
)

// Summoners implements the summoner-v1.4 API methods. The bulk lookups
// accept up to 40 names or ids per call; results are keyed by
// standardized summoner name or by summoner id respectively.
type Summoners struct {
	api *apiClient
}

func NewSummonerApi(cfg Config) *Summoners {
	return &Summoners{
		api: newApiClient(cfg),
	}
}

// ByName returns summoners keyed by standardized name (lowercased, no
// whitespace) for the given list of names.
func (s *Summoners) ByName(names []string) (map[string]types.Summoner, error) {
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = url.PathEscape(name)
	}
	res := map[string]types.Summoner{}
	return toNilErr(res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathSummonerByName, "{summonerNames}", strings.Join(escaped, ","), 1)),
		nil, true, &res,
	))
}

// ByIds returns summoners keyed by summoner id.
func (s *Summoners) ByIds(summonerIds []int64) (map[string]types.Summoner, error) {
	res := map[string]types.Summoner{}
	return toNilErr(res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathSummonerByIds, "{summonerIds}", joinIds(summonerIds), 1)),
		nil, true, &res,
	))
}

// Names returns display names keyed by summoner id.
func (s *Summoners) Names(summonerIds []int64) (map[string]types.SummonerName, error) {
	res := map[string]types.SummonerName{}
	return toNilErr(res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathSummonerNames, "{summonerIds}", joinIds(summonerIds), 1)),
		nil, true, &res,
	))
}

// Masteries returns mastery pages keyed by summoner id.
func (s *Summoners) Masteries(summonerIds []int64) (map[string]types.MasteryPages, error) {
	res := map[string]types.MasteryPages{}
	return toNilErr(res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathSummonerMasteries, "{summonerIds}", joinIds(summonerIds), 1)),
		nil, true, &res,
	))
}

// Runes returns rune pages keyed by summoner id.
func (s *Summoners) Runes(summonerIds []int64) (map[string]types.RunePages, error) {
	res := map[string]types.RunePages{}
	return toNilErr(res, s.api.getJson(
		s.api.regionPath(strings.Replace(pathSummonerRunes, "{summonerIds}", joinIds(summonerIds), 1)),
		nil, true, &res,
	))
}
