package dto

// RosterOverview is the dashboard entry point payload: one entry per
// tracked player, in the configured roster order.
type RosterOverview struct {
	Entries []RosterEntry `json:"entries"`
}

// RosterEntry holds the ranked state of a single tracked player.
type RosterEntry struct {
	SummonerName string         `json:"summonerName"`
	Puuid        string         `json:"puuid"`
	League       *LeagueSummary `json:"league"`
	Matches      []string       `json:"matches"`
}

// LeagueSummary is the solo queue entry of a player.
// Nil on the roster entry when the player is unranked.
type LeagueSummary struct {
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
}
