package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"steamstatus/status-bot/models"
)

// GetPlayerSummaries accepts at most this many ids per call.
const maxSummaryIDs = 100

// SteamClient talks to the ISteamUser interface of the Steam Web API.
type SteamClient struct {
	http    *http.Client
	key     string
	baseURL string
}

func NewSteamClient(key, baseURL string, timeout time.Duration) *SteamClient {
	return &SteamClient{
		http:    &http.Client{Timeout: timeout},
		key:     key,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PlayerSummaries fetches the summaries of the given Steam ids, batching the
// requests as the API requires. Ids unknown to Steam are simply absent.
func (c *SteamClient) PlayerSummaries(ctx context.Context, ids []string) ([]models.PlayerSummary, error) {
	var out []models.PlayerSummary
	for start := 0; start < len(ids); start += maxSummaryIDs {
		end := min(start+maxSummaryIDs, len(ids))
		players, err := c.fetchSummaries(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, players...)
	}
	return out, nil
}

func (c *SteamClient) fetchSummaries(ctx context.Context, ids []string) ([]models.PlayerSummary, error) {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("steamids", strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/ISteamUser/GetPlayerSummaries/v0002/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build steam request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("steam api returned %s", resp.Status)
	}

	var body models.PlayerSummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode steam response: %w", err)
	}
	return body.Response.Players, nil
}
