package playerfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/messages"
	"net/http"
	"strconv"
)

// The player fetcher with it's client and regions.
type PlayerFetcher struct {
	client  *requests.Client
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	// Routing region for the match list, platform region for the summoner data.
	routing  string
	platform string
}

// CreatePlayerFetcher creates a player fetcher.
func CreatePlayerFetcher(client *requests.Client, limiter *requests.RateLimiter, routing string, platform string) *PlayerFetcher {
	return &PlayerFetcher{
		client:   client,
		limiter:  limiter,
		routing:  routing,
		platform: platform,
	}
}

// GetMatchList gets a players most recent match ids for a given queue.
func (p *PlayerFetcher) GetMatchList(ctx context.Context, puuid string, queueId int, count int, onDemand bool) ([]string, error) {
	if onDemand {
		p.limiter.WaitApi()
	} else {
		p.limiter.WaitJob()
	}

	// Format the URL and create the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids", p.routing, puuid)
	params := map[string]string{
		"queue": strconv.Itoa(queueId),
		"start": "0",
		"count": strconv.Itoa(count),
	}

	resp, err := p.client.AuthRequest(ctx, url, "GET", params)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	// Parse the matches list.
	var matches []string
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	// Return the matches.
	return matches, nil
}

// GetSummonerData gets a players summoner data.
func (p *PlayerFetcher) GetSummonerData(ctx context.Context, puuid string, onDemand bool) (*SummonerByPuuid, error) {
	if onDemand {
		p.limiter.WaitApi()
	} else {
		p.limiter.WaitJob()
	}

	// Format the URL and create the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", p.platform, puuid)

	// Make the request with proper auth.
	resp, err := p.client.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	// Parse the summoner data.
	var summonerData SummonerByPuuid
	if err := json.NewDecoder(resp.Body).Decode(&summonerData); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	// Return the summoner.
	return &summonerData, nil
}
