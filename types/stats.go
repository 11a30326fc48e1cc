package types

type RankedStats struct {
	SummonerId int64           `json:"summonerId"`
	ModifyDate int64           `json:"modifyDate"`
	Champions  []ChampionStats `json:"champions"`
}

// ChampionStats aggregates ranked stats for one champion. Id 0 holds
// the combined stats across all champions.
type ChampionStats struct {
	Id    int             `json:"id"`
	Stats AggregatedStats `json:"stats"`
}

type AggregatedStats struct {
	TotalSessionsPlayed   int `json:"totalSessionsPlayed"`
	TotalSessionsWon      int `json:"totalSessionsWon"`
	TotalSessionsLost     int `json:"totalSessionsLost"`
	TotalChampionKills    int `json:"totalChampionKills"`
	TotalAssists          int `json:"totalAssists"`
	TotalDeathsPerSession int `json:"totalDeathsPerSession"`
	TotalGoldEarned       int `json:"totalGoldEarned"`
	TotalMinionKills      int `json:"totalMinionKills"`
}

type PlayerStatsSummaryList struct {
	SummonerId          int64                `json:"summonerId"`
	PlayerStatSummaries []PlayerStatsSummary `json:"playerStatSummaries"`
}

type PlayerStatsSummary struct {
	PlayerStatSummaryType string          `json:"playerStatSummaryType"`
	AggregatedStats       AggregatedStats `json:"aggregatedStats"`
	Wins                  int             `json:"wins"`
	Losses                int             `json:"losses"`
	ModifyDate            int64           `json:"modifyDate"`
}
