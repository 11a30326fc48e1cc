package api

import (
	"fmt"
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathGameRecent = "/api/lol/{region}/v1.3/game/by-summoner/{summonerId}/recent"
)

// Games implements the game-v1.3 API methods.
type Games struct {
	api *apiClient
}

func NewGameApi(cfg Config) *Games {
	return &Games{
		api: newApiClient(cfg),
	}
}

// Recent returns up to the 10 most recent games played by the summoner.
func (g *Games) Recent(summonerId int64) (*types.RecentGames, error) {
	var res types.RecentGames
	return toNilErr(&res, g.api.getJson(
		g.api.regionPath(strings.Replace(pathGameRecent, "{summonerId}", fmt.Sprint(summonerId), 1)),
		nil, true, &res,
	))
}
