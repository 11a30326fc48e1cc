package types

// Static-data DTOs (lol-static-data-v1.2). These endpoints serve game
// constants keyed by string ids and are versioned by data-dragon.

type StaticChampionList struct {
	Data    map[string]StaticChampion `json:"data"`
	Format  string                    `json:"format"`
	Type    string                    `json:"type"`
	Version string                    `json:"version"`
}

type StaticChampion struct {
	Id    int      `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type ItemList struct {
	Data    map[string]Item `json:"data"`
	Type    string          `json:"type"`
	Version string          `json:"version"`
}

type Item struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Plaintext   string `json:"plaintext"`
	Group       string `json:"group"`
}

type StaticMasteryList struct {
	Data    map[string]StaticMastery `json:"data"`
	Type    string                   `json:"type"`
	Version string                   `json:"version"`
}

type StaticMastery struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Description []string `json:"description"`
	Ranks       int      `json:"ranks"`
}

type StaticRuneList struct {
	Data    map[string]StaticRune `json:"data"`
	Type    string                `json:"type"`
	Version string                `json:"version"`
}

type StaticRune struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
}

type SummonerSpellList struct {
	Data    map[string]SummonerSpell `json:"data"`
	Type    string                   `json:"type"`
	Version string                   `json:"version"`
}

type SummonerSpell struct {
	Id            int    `json:"id"`
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SummonerLevel int    `json:"summonerLevel"`
}

type Realm struct {
	Cdn            string            `json:"cdn"`
	Css            string            `json:"css"`
	Dd             string            `json:"dd"`
	L              string            `json:"l"`
	Lg             string            `json:"lg"`
	N              map[string]string `json:"n"`
	ProfileIconMax int               `json:"profileiconmax"`
	V              string            `json:"v"`
}
