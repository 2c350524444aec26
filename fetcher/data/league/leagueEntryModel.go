package leaguefetcher

// LeagueEntry is the type returned by the simple league entries.
type LeagueEntry struct {
	Puuid        string  `json:"puuid"`
	Tier         *string `json:"tier,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	QueueType    *string `json:"queueType,omitempty"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	HotStreak    bool    `json:"hotStreak"`
}
