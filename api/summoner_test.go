package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexmerser/Cassiopeia/errors"
	"github.com/alexmerser/Cassiopeia/types"
)

func TestNewSummonerApi(t *testing.T) {
	client := &http.Client{}
	api := NewSummonerApi(testConfig(client))

	assert.NotNil(t, api)
	assert.NotNil(t, api.api)
	assert.Equal(t, testApiKey, api.api.apiKey)
	assert.Equal(t, client, api.api.httpClient)
}

func TestSummoners_ByName(t *testing.T) {
	testCases := []struct {
		name       string
		names      []string
		resBody    []byte
		resCode    int
		expectUrl  string
		expectRes  map[string]types.Summoner
		expectErr  bool
		resErrType string
	}{
		{
			name:  "single name",
			names: []string{"Dyrus"},
			resBody: []byte(`{
				"dyrus": {"id": 5908, "name": "Dyrus", "summonerLevel": 30}
			}`),
			resCode:   200,
			expectUrl: "https://na.api.pvp.net/api/lol/na/v1.4/summoner/by-name/Dyrus?api_key=test-api-key",
			expectRes: map[string]types.Summoner{
				"dyrus": {Id: 5908, Name: "Dyrus", SummonerLevel: 30},
			},
		},
		{
			name:  "multiple names are comma joined and escaped",
			names: []string{"Dyrus", "the oddone"},
			resBody: []byte(`{
				"dyrus": {"id": 5908, "name": "Dyrus"},
				"theoddone": {"id": 60783, "name": "TheOddOne"}
			}`),
			resCode:   200,
			expectUrl: "https://na.api.pvp.net/api/lol/na/v1.4/summoner/by-name/Dyrus,the%20oddone?api_key=test-api-key",
			expectRes: map[string]types.Summoner{
				"dyrus":     {Id: 5908, Name: "Dyrus"},
				"theoddone": {Id: 60783, Name: "TheOddOne"},
			},
		},
		{
			name:       "rate limit exceeded on the server side",
			names:      []string{"Dyrus"},
			resBody:    []byte(`{"status":{"message":"Rate limit exceeded","status_code":429}}`),
			resCode:    429,
			expectUrl:  "https://na.api.pvp.net/api/lol/na/v1.4/summoner/by-name/Dyrus?api_key=test-api-key",
			expectErr:  true,
			resErrType: errors.TYPE_HTTP_STATUS,
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := httpClient(tt.resBody, tt.resCode, nil)
			api := NewSummonerApi(testConfig(c))

			summoners, err := api.ByName(tt.names)
			if tt.expectErr {
				assert.Error(t, err)
				apiError := err.(*errors.ApiError)
				assert.Equal(t, tt.resCode, apiError.HttpStatusCode)
				assert.Equal(t, tt.resErrType, apiError.Type)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectRes, summoners)
			}

			tr, _ := c.Transport.(*testTransport)
			assert.Equal(t, tt.expectUrl, tr.Url())
		})
	}
}

func TestSummoners_ByIds(t *testing.T) {
	c := httpClient([]byte(`{
		"5908": {"id": 5908, "name": "Dyrus"},
		"60783": {"id": 60783, "name": "TheOddOne"}
	}`), 200, nil)
	api := NewSummonerApi(testConfig(c))

	summoners, err := api.ByIds([]int64{5908, 60783})
	assert.NoError(t, err)
	assert.Equal(t, map[string]types.Summoner{
		"5908":  {Id: 5908, Name: "Dyrus"},
		"60783": {Id: 60783, Name: "TheOddOne"},
	}, summoners)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t,
		"https://na.api.pvp.net/api/lol/na/v1.4/summoner/5908,60783?api_key=test-api-key",
		tr.Url(),
	)
}

func TestSummoners_Names(t *testing.T) {
	c := httpClient([]byte(`{"5908": "Dyrus"}`), 200, nil)
	api := NewSummonerApi(testConfig(c))

	names, err := api.Names([]int64{5908})
	assert.NoError(t, err)
	assert.Equal(t, map[string]types.SummonerName{"5908": "Dyrus"}, names)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t,
		"https://na.api.pvp.net/api/lol/na/v1.4/summoner/5908/name?api_key=test-api-key",
		tr.Url(),
	)
}

func TestSummoners_Masteries(t *testing.T) {
	c := httpClient([]byte(`{
		"5908": {
			"summonerId": 5908,
			"pages": [{"id": 1, "name": "page 1", "current": true, "masteries": [{"id": 4111, "rank": 3}]}]
		}
	}`), 200, nil)
	api := NewSummonerApi(testConfig(c))

	masteries, err := api.Masteries([]int64{5908})
	assert.NoError(t, err)
	assert.Equal(t, map[string]types.MasteryPages{
		"5908": {
			SummonerId: 5908,
			Pages: []types.MasteryPage{
				{Id: 1, Name: "page 1", Current: true, Masteries: []types.Mastery{{Id: 4111, Rank: 3}}},
			},
		},
	}, masteries)
}

func TestSummoners_Runes(t *testing.T) {
	c := httpClient([]byte(`{
		"5908": {
			"summonerId": 5908,
			"pages": [{"id": 2, "name": "ad page", "slots": [{"runeSlotId": 1, "runeId": 5245}]}]
		}
	}`), 200, nil)
	api := NewSummonerApi(testConfig(c))

	runes, err := api.Runes([]int64{5908})
	assert.NoError(t, err)
	assert.Equal(t, map[string]types.RunePages{
		"5908": {
			SummonerId: 5908,
			Pages: []types.RunePage{
				{Id: 2, Name: "ad page", Slots: []types.RuneSlot{{RuneSlotId: 1, RuneId: 5245}}},
			},
		},
	}, runes)
}
