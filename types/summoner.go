package types

type Summoner struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	ProfileIconId int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// SummonerName is the by-id name lookup value; the API maps summoner
// ids to plain name strings.
type SummonerName = string

type MasteryPages struct {
	SummonerId int64         `json:"summonerId"`
	Pages      []MasteryPage `json:"pages"`
}

type MasteryPage struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Current   bool      `json:"current"`
	Masteries []Mastery `json:"masteries"`
}

type Mastery struct {
	Id   int `json:"id"`
	Rank int `json:"rank"`
}

type RunePages struct {
	SummonerId int64      `json:"summonerId"`
	Pages      []RunePage `json:"pages"`
}

type RunePage struct {
	Id      int64      `json:"id"`
	Name    string     `json:"name"`
	Current bool       `json:"current"`
	Slots   []RuneSlot `json:"slots"`
}

type RuneSlot struct {
	RuneSlotId int `json:"runeSlotId"`
	RuneId     int `json:"runeId"`
}
