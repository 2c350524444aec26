package spectatorfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/messages"
	"net/http"
)

// ErrNotInGame is returned when the spectator endpoint answers with a 404.
var ErrNotInGame = errors.New(messages.SummonerNotInGameMsg)

// The spectator fetcher with it's client and platform region.
type SpectatorFetcher struct {
	client  *requests.Client
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	region  string
}

// CreateSpectatorFetcher creates a spectator fetcher.
func CreateSpectatorFetcher(client *requests.Client, limiter *requests.RateLimiter, region string) *SpectatorFetcher {
	return &SpectatorFetcher{
		client:  client,
		limiter: limiter,
		region:  region,
	}
}

// GetActiveGame gets the current game of a given player, if any.
// Not being in a game is a distinct condition, not a generic failure.
func (s *SpectatorFetcher) GetActiveGame(ctx context.Context, puuid string, onDemand bool) (*ActiveGame, error) {
	// Verify the type of request.
	if onDemand {
		s.limiter.WaitApi()
	} else {
		s.limiter.WaitJob()
	}

	// Format the URL and create the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/spectator/v5/active-games/by-summoner/%s",
		s.region, puuid)

	resp, err := s.client.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	defer resp.Body.Close()

	// The player is simply not playing right now.
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotInGame
	}

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	// Parse the active game.
	var game ActiveGame
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	// Return the game.
	return &game, nil
}
