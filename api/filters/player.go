package filters

// PlayerURIParams are the URI params for the summoner and spectator endpoints.
type PlayerURIParams struct {
	Puuid string `uri:"puuid" binding:"required"`
}
