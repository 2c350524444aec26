package playerfetcher

// SummonerByPuuid is the return of the summoner_v4 endpoint.
type SummonerByPuuid struct {
	ProfileIconId int    `json:"profileIconId"`
	Puuid         string `json:"puuid"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}
