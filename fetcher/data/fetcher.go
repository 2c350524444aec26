package data

import (
	leaguefetcher "leaguedash/fetcher/data/league"
	matchfetcher "leaguedash/fetcher/data/match"
	playerfetcher "leaguedash/fetcher/data/player"
	spectatorfetcher "leaguedash/fetcher/data/spectator"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/config"
)

// Define a main fetcher.
type MainFetcher struct {
	Match     *matchfetcher.MatchFetcher
	Player    *playerfetcher.PlayerFetcher
	League    *leaguefetcher.LeagueFetcher
	Spectator *spectatorfetcher.SpectatorFetcher
}

// CreateMainFetcher instanciates the main fetcher.
// A single limiter is shared across the endpoints since the Riot
// limits are counted per API key, not per endpoint.
func CreateMainFetcher(riot config.RiotConfiguration, limits config.LimitsConfiguration) *MainFetcher {
	client := requests.NewClient(riot.ApiKey)
	limiter := requests.CreateRateLimiter(limits)

	return &MainFetcher{
		Match:     matchfetcher.CreateMatchFetcher(client, limiter, riot.Routing),
		Player:    playerfetcher.CreatePlayerFetcher(client, limiter, riot.Routing, riot.Platform),
		League:    leaguefetcher.CreateLeagueFetcher(client, limiter, riot.Platform),
		Spectator: spectatorfetcher.CreateSpectatorFetcher(client, limiter, riot.Platform),
	}
}
