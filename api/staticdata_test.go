package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexmerser/Cassiopeia/types"
)

func TestStaticData_Champions(t *testing.T) {
	c := httpClient([]byte(`{
		"type": "champion",
		"version": "5.2.1",
		"data": {
			"Annie": {"id": 1, "key": "Annie", "name": "Annie", "title": "the Dark Child", "tags": ["Mage"]}
		}
	}`), 200, nil)
	api := NewStaticDataApi(testConfig(c))

	champions, err := api.Champions()
	assert.NoError(t, err)
	assert.Equal(t, "5.2.1", champions.Version)
	assert.Equal(t, types.StaticChampion{
		Id: 1, Key: "Annie", Name: "Annie", Title: "the Dark Child", Tags: []string{"Mage"},
	}, champions.Data["Annie"])

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t,
		"https://na.api.pvp.net/api/lol/static-data/na/v1.2/champion?api_key=test-api-key",
		tr.Url(),
	)
}

func TestStaticData_requests_skip_the_limiter(t *testing.T) {
	limiter := &countingLimiter{}
	c := httpClient([]byte(`{"type": "champion", "data": {}}`), 200, nil)
	cfg := testConfig(c)
	cfg.Limiter = limiter
	api := NewStaticDataApi(cfg)

	_, err := api.Champions()
	assert.NoError(t, err)
	assert.Equal(t, 0, limiter.calls)
}

func TestStaticData_ChampionById(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := httpClient([]byte(`{"id": 103, "key": "Ahri", "name": "Ahri"}`), 200, nil)
		api := NewStaticDataApi(testConfig(c))

		champion, found, err := api.ChampionById(103)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Ahri", champion.Name)
	})

	t.Run("not found", func(t *testing.T) {
		c := httpClient([]byte(`{"status":{"message":"Not Found","status_code":404}}`), 404, nil)
		api := NewStaticDataApi(testConfig(c))

		champion, found, err := api.ChampionById(0)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, champion)
	})
}

func TestStaticData_Realm(t *testing.T) {
	c := httpClient([]byte(`{
		"cdn": "http://ddragon.leagueoflegends.com/cdn",
		"dd": "5.2.1",
		"v": "5.2.1",
		"n": {"champion": "5.2.1", "item": "5.2.1"}
	}`), 200, nil)
	api := NewStaticDataApi(testConfig(c))

	realm, err := api.Realm()
	assert.NoError(t, err)
	assert.Equal(t, "http://ddragon.leagueoflegends.com/cdn", realm.Cdn)
	assert.Equal(t, "5.2.1", realm.N["item"])
}

func TestStaticData_Versions(t *testing.T) {
	c := httpClient([]byte(`["5.2.1", "5.1.2", "5.1.1"]`), 200, nil)
	api := NewStaticDataApi(testConfig(c))

	versions, err := api.Versions()
	assert.NoError(t, err)
	assert.Equal(t, []string{"5.2.1", "5.1.2", "5.1.1"}, versions)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t,
		"https://na.api.pvp.net/api/lol/static-data/na/v1.2/versions?api_key=test-api-key",
		tr.Url(),
	)
}
