package filters

// MatchURIParams are the URI params for the match endpoints.
type MatchURIParams struct {
	MatchId string `uri:"matchId" binding:"required"`
}

// MatchQueryParams scope a match endpoint to one tracked player.
type MatchQueryParams struct {
	Puuid string `form:"puuid" binding:"required"`
}
