package api

import (
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathTeamBySummoner = "/api/lol/{region}/v2.3/team/by-summoner/{summonerIds}"
	pathTeamByIds      = "/api/lol/{region}/v2.3/team/{teamIds}"
)

// Teams implements the team-v2.3 API methods.
type Teams struct {
	api *apiClient
}

func NewTeamApi(cfg Config) *Teams {
	return &Teams{
		api: newApiClient(cfg),
	}
}

// BySummoner returns teams keyed by summoner id for up to 40 summoner
// ids per call.
func (t *Teams) BySummoner(summonerIds []int64) (map[string][]types.Team, error) {
	res := map[string][]types.Team{}
	return toNilErr(res, t.api.getJson(
		t.api.regionPath(strings.Replace(pathTeamBySummoner, "{summonerIds}", joinIds(summonerIds), 1)),
		nil, true, &res,
	))
}

// ByIds returns teams keyed by team id for up to 40 team ids per call.
func (t *Teams) ByIds(teamIds []string) (map[string]types.Team, error) {
	res := map[string]types.Team{}
	return toNilErr(res, t.api.getJson(
		t.api.regionPath(strings.Replace(pathTeamByIds, "{teamIds}", strings.Join(teamIds, ","), 1)),
		nil, true, &res,
	))
}
