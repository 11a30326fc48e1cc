package types

// Champion is the champion-v1.2 representation of a playable champion's
// current rotation flags. Static data (name, title, tags) lives in the
// lol-static-data endpoints instead.
type Champion struct {
	Id                int64 `json:"id"`
	Active            bool  `json:"active"`
	BotEnabled        bool  `json:"botEnabled"`
	BotMmEnabled      bool  `json:"botMmEnabled"`
	FreeToPlay        bool  `json:"freeToPlay"`
	RankedPlayEnabled bool  `json:"rankedPlayEnabled"`
}

type ChampionList struct {
	Champions []Champion `json:"champions"`
}
