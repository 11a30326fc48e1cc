package api

import (
	"fmt"
	"strings"

	"github.com/alexmerser/Cassiopeia/types"
)

const (
	pathStaticChampions     = "/api/lol/static-data/{region}/v1.2/champion"
	pathStaticChampionById  = "/api/lol/static-data/{region}/v1.2/champion/{id}"
	pathStaticItems         = "/api/lol/static-data/{region}/v1.2/item"
	pathStaticItemById      = "/api/lol/static-data/{region}/v1.2/item/{id}"
	pathStaticMasteries     = "/api/lol/static-data/{region}/v1.2/mastery"
	pathStaticRunes         = "/api/lol/static-data/{region}/v1.2/rune"
	pathStaticSummonerSpell = "/api/lol/static-data/{region}/v1.2/summoner-spell"
	pathStaticRealm         = "/api/lol/static-data/{region}/v1.2/realm"
	pathStaticVersions      = "/api/lol/static-data/{region}/v1.2/versions"
)

// StaticData implements the lol-static-data-v1.2 API methods. Requests
// to these endpoints do not count against the key's rate rules, so they
// are issued without consulting the limiter.
type StaticData struct {
	api *apiClient
}

func NewStaticDataApi(cfg Config) *StaticData {
	return &StaticData{
		api: newApiClient(cfg),
	}
}

func (s *StaticData) Champions() (*types.StaticChampionList, error) {
	var res types.StaticChampionList
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(pathStaticChampions), nil, false, &res,
	))
}

func (s *StaticData) ChampionById(id int) (*types.StaticChampion, bool, error) {
	var res types.StaticChampion
	err := s.api.getJson(
		s.api.regionPath(strings.Replace(pathStaticChampionById, "{id}", fmt.Sprint(id), 1)),
		nil, false, &res,
	)
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &res, true, nil
}

func (s *StaticData) Items() (*types.ItemList, error) {
	var res types.ItemList
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(pathStaticItems), nil, false, &res,
	))
}

func (s *StaticData) ItemById(id int) (*types.Item, bool, error) {
	var res types.Item
	err := s.api.getJson(
		s.api.regionPath(strings.Replace(pathStaticItemById, "{id}", fmt.Sprint(id), 1)),
		nil, false, &res,
	)
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &res, true, nil
}

func (s *StaticData) Masteries() (*types.StaticMasteryList, error) {
	var res types.StaticMasteryList
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(pathStaticMasteries), nil, false, &res,
	))
}

func (s *StaticData) Runes() (*types.StaticRuneList, error) {
	var res types.StaticRuneList
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(pathStaticRunes), nil, false, &res,
	))
}

func (s *StaticData) SummonerSpells() (*types.SummonerSpellList, error) {
	var res types.SummonerSpellList
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(pathStaticSummonerSpell), nil, false, &res,
	))
}

func (s *StaticData) Realm() (*types.Realm, error) {
	var res types.Realm
	return toNilErr(&res, s.api.getJson(
		s.api.regionPath(pathStaticRealm), nil, false, &res,
	))
}

func (s *StaticData) Versions() ([]string, error) {
	var res []string
	if err := s.api.getJson(s.api.regionPath(pathStaticVersions), nil, false, &res); err != nil {
		return nil, err
	}
	return res, nil
}
