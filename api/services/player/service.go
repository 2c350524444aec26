package playerservice

import (
	"context"
	playerfetcher "leaguedash/fetcher/data/player"
	spectatorfetcher "leaguedash/fetcher/data/spectator"
)

// SummonerSource provides the summoner data of a player.
type SummonerSource interface {
	GetSummonerData(ctx context.Context, puuid string, onDemand bool) (*playerfetcher.SummonerByPuuid, error)
}

// SpectatorSource provides the live game of a player.
type SpectatorSource interface {
	GetActiveGame(ctx context.Context, puuid string, onDemand bool) (*spectatorfetcher.ActiveGame, error)
}

// PlayerService proxies the per player upstream endpoints.
type PlayerService struct {
	summoner  SummonerSource
	spectator SpectatorSource
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	Summoner  SummonerSource
	Spectator SpectatorSource
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		summoner:  deps.Summoner,
		spectator: deps.Spectator,
	}
}

// GetSummoner returns the summoner data of a player.
func (ps *PlayerService) GetSummoner(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	return ps.summoner.GetSummonerData(ctx, puuid, true)
}

// GetActiveGame returns the live game of a player.
// Not being in a game surfaces as spectatorfetcher.ErrNotInGame.
func (ps *PlayerService) GetActiveGame(ctx context.Context, puuid string) (*spectatorfetcher.ActiveGame, error) {
	return ps.spectator.GetActiveGame(ctx, puuid, true)
}
