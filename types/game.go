package types

type RecentGames struct {
	SummonerId int64  `json:"summonerId"`
	Games      []Game `json:"games"`
}

type Game struct {
	GameId        int64    `json:"gameId"`
	ChampionId    int      `json:"championId"`
	CreateDate    int64    `json:"createDate"`
	FellowPlayers []Player `json:"fellowPlayers"`
	GameMode      string   `json:"gameMode"`
	GameType      string   `json:"gameType"`
	SubType       string   `json:"subType"`
	Invalid       bool     `json:"invalid"`
	IpEarned      int      `json:"ipEarned"`
	Level         int      `json:"level"`
	MapId         int      `json:"mapId"`
	Spell1        int      `json:"spell1"`
	Spell2        int      `json:"spell2"`
	TeamId        int      `json:"teamId"`
	Stats         RawStats `json:"stats"`
}

type Player struct {
	ChampionId int   `json:"championId"`
	SummonerId int64 `json:"summonerId"`
	TeamId     int   `json:"teamId"`
}

// RawStats carries the per-game stat block. The API defines many more
// fields; this is the commonly populated subset.
type RawStats struct {
	Assists         int  `json:"assists"`
	ChampionsKilled int  `json:"championsKilled"`
	GoldEarned      int  `json:"goldEarned"`
	Level           int  `json:"level"`
	MinionsKilled   int  `json:"minionsKilled"`
	NumDeaths       int  `json:"numDeaths"`
	TimePlayed      int  `json:"timePlayed"`
	Win             bool `json:"win"`
}
