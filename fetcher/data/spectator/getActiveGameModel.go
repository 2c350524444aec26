package spectatorfetcher

// ActiveGame is the return of the spectator_v5 endpoint.
type ActiveGame struct {
	GameId            int64                   `json:"gameId"`
	GameLength        int64                   `json:"gameLength"`
	GameMode          string                  `json:"gameMode"`
	GameQueueConfigId int                     `json:"gameQueueConfigId"`
	GameStartTime     int64                   `json:"gameStartTime"`
	MapId             int                     `json:"mapId"`
	Participants      []ActiveGameParticipant `json:"participants"`
}

// ActiveGameParticipant is a player inside a live game.
type ActiveGameParticipant struct {
	ChampionId int    `json:"championId"`
	Puuid      string `json:"puuid"`
	RiotId     string `json:"riotId"`
	Spell1Id   int    `json:"spell1Id"`
	Spell2Id   int    `json:"spell2Id"`
	TeamId     int    `json:"teamId"`
}
