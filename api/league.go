package api

import (
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathLeagueBySummoner      = "/api/lol/{region}/v2.4/league/by-summoner/{summonerIds}"
	pathLeagueBySummonerEntry = "/api/lol/{region}/v2.4/league/by-summoner/{summonerIds}/entry"
	pathLeagueByTeam          = "/api/lol/{region}/v2.4/league/by-team/{teamIds}"
	pathLeagueByTeamEntry     = "/api/lol/{region}/v2.4/league/by-team/{teamIds}/entry"
	pathLeagueChallenger      = "/api/lol/{region}/v2.4/league/challenger"
)

// Leagues implements the league-v2.4 API methods.
type Leagues struct {
	api *apiClient
}

func NewLeagueApi(cfg Config) *Leagues {
	return &Leagues{
		api: newApiClient(cfg),
	}
}

// BySummoner returns ranked league information keyed by summoner id for
// up to 40 summoner ids per call. With entryOnly set, only the entries
// for the requested summoners are returned rather than their entire
// leagues.
func (l *Leagues) BySummoner(summonerIds []int64, entryOnly bool) (map[string][]types.League, error) {
	path := pathLeagueBySummoner
	if entryOnly {
		path = pathLeagueBySummonerEntry
	}
	res := map[string][]types.League{}
	return toNilErr(res, l.api.getJson(
		l.api.regionPath(strings.Replace(path, "{summonerIds}", joinIds(summonerIds), 1)),
		nil, true, &res,
	))
}

// ByTeam returns ranked league information keyed by team id for up to
// 40 team ids per call. With entryOnly set, only the entries for the
// requested teams are returned.
func (l *Leagues) ByTeam(teamIds []string, entryOnly bool) (map[string][]types.League, error) {
	path := pathLeagueByTeam
	if entryOnly {
		path = pathLeagueByTeamEntry
	}
	res := map[string][]types.League{}
	return toNilErr(res, l.api.getJson(
		l.api.regionPath(strings.Replace(path, "{teamIds}", strings.Join(teamIds, ","), 1)),
		nil, true, &res,
	))
}

// Challenger returns the region's challenger league.
func (l *Leagues) Challenger() (*types.League, error) {
	var res types.League
	return toNilErr(&res, l.api.getJson(
		l.api.regionPath(pathLeagueChallenger), nil, true, &res,
	))
}
