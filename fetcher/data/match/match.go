package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/messages"
	"net/http"
)

// The match fetcher with it's client, limiter and routing region.
type MatchFetcher struct {
	client  *requests.Client
	limiter *requests.RateLimiter
	region  string
}

// CreateMatchFetcher creates a instance of the match fetcher.
func CreateMatchFetcher(client *requests.Client, limiter *requests.RateLimiter, region string) *MatchFetcher {
	return &MatchFetcher{
		client:  client,
		limiter: limiter,
		region:  region,
	}
}

// GetMatchData gets a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string, onDemand bool) (*MatchData, error) {
	// Verify if it's onDemand.
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	// Format the URL and create the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", m.region, matchId)

	resp, err := m.client.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	// Parse the matches data.
	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	// Return the matches.
	return &matchData, nil
}

// GetMatchTimelineData gets a given match timeline.
func (m *MatchFetcher) GetMatchTimelineData(ctx context.Context, matchId string, onDemand bool) (*MatchTimeline, error) {
	// Verify if it's onDemand.
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	// Format the URL and create the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s/timeline", m.region, matchId)

	resp, err := m.client.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	// Parse the match timeline.
	var matchTimeline MatchTimeline
	if err := json.NewDecoder(resp.Body).Decode(&matchTimeline); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	// Return the timeline.
	return &matchTimeline, nil
}
