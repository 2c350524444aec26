package requests

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ErrRateLimited is returned when the Riot API answers with a 429.
var ErrRateLimited = errors.New("rate limit reached")

// Client does authenticated requests against the Riot API.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a request client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthRequest does a authenticated request to the Riot API.
// Return the response.
func (c *Client) AuthRequest(ctx context.Context, url string, method string, params map[string]string) (*http.Response, error) {
	// Create the request for the given url.
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		query := req.URL.Query()
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	// Add the token from the configuration.
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	// Surface the rate limit as a distinct condition for the handlers.
	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		return nil, ErrRateLimited
	}

	return resp, nil
}
