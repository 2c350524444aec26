package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/messages"
	"net/http"
)

// The league fetcher with it's client and platform region.
type LeagueFetcher struct {
	client  *requests.Client
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	region  string
}

// CreateLeagueFetcher creates a league fetcher.
func CreateLeagueFetcher(client *requests.Client, limiter *requests.RateLimiter, region string) *LeagueFetcher {
	return &LeagueFetcher{
		client:  client,
		limiter: limiter,
		region:  region,
	}
}

// GetLeagueByPuuid gets a given player entries for each queue.
func (l *LeagueFetcher) GetLeagueByPuuid(ctx context.Context, puuid string, onDemand bool) ([]LeagueEntry, error) {
	// Verify the type of request.
	if onDemand {
		l.limiter.WaitApi()
	} else {
		l.limiter.WaitJob()
	}

	// Format the URL and create the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		l.region, puuid)

	resp, err := l.client.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	// Parse the league entries.
	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	// Return the entries.
	return entries, nil
}
