package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathChampionAll  = "/api/lol/{region}/v1.2/champion"
	pathChampionById = "/api/lol/{region}/v1.2/champion/{id}"
)

// Champions implements the champion-v1.2 API methods.
type Champions struct {
	api *apiClient
}

func NewChampionApi(cfg Config) *Champions {
	return &Champions{
		api: newApiClient(cfg),
	}
}

// All returns rotation flags for every champion. With freeToPlay set,
// only champions on the current free rotation are returned.
func (c *Champions) All(freeToPlay bool) ([]types.Champion, error) {
	params := url.Values{}
	if freeToPlay {
		params.Add("freeToPlay", "true")
	}
	var res types.ChampionList
	return toNilErr(res.Champions, c.api.getJson(
		c.api.regionPath(pathChampionAll), params, true, &res,
	))
}

// ById returns rotation flags for one champion. The second return value
// is false when the id is unknown to the API.
func (c *Champions) ById(championId int64) (*types.Champion, bool, error) {
	var res types.Champion
	err := c.api.getJson(
		c.api.regionPath(strings.Replace(pathChampionById, "{id}", fmt.Sprint(championId), 1)),
		nil, true, &res,
	)
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &res, true, nil
}
