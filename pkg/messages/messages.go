package messages

const (
	BadStatusCodeMsg     = "API returned status code %d on URL %s"
	FailedToParseMsg     = "failed to parse API response"
	NotRankedMsg         = "not a solo ranked game"
	ParticipantNotFound  = "player not found in match data"
	RateLimitReachedMsg  = "rate limit reached, please wait"
	RequestFailedMsg     = "API request failed on URL %s"
	SummonerNotInGameMsg = "summoner is not in an active game"
)
