package types

type League struct {
	Name          string        `json:"name"`
	Queue         string        `json:"queue"`
	Tier          string        `json:"tier"`
	ParticipantId string        `json:"participantId"`
	Entries       []LeagueEntry `json:"entries"`
}

type LeagueEntry struct {
	PlayerOrTeamId   string      `json:"playerOrTeamId"`
	PlayerOrTeamName string      `json:"playerOrTeamName"`
	Division         string      `json:"division"`
	LeaguePoints     int         `json:"leaguePoints"`
	Wins             int         `json:"wins"`
	Losses           int         `json:"losses"`
	IsFreshBlood     bool        `json:"isFreshBlood"`
	IsHotStreak      bool        `json:"isHotStreak"`
	IsInactive       bool        `json:"isInactive"`
	IsVeteran        bool        `json:"isVeteran"`
	MiniSeries       *MiniSeries `json:"miniSeries,omitempty"`
}

type MiniSeries struct {
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}
