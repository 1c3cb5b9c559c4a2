// Package catalog talks to the Google Books volumes API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

// Volume mirrors the parts of a volume record that are used. Every field may
// be absent upstream.
type Volume struct {
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title       *string     `json:"title"`
	Authors     []string    `json:"authors"`
	Categories  []string    `json:"categories"`
	Description *string     `json:"description"`
	ImageLinks  *ImageLinks `json:"imageLinks"`
}

type ImageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

type volumesResponse struct {
	Items []Volume `json:"items"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Volumes returns at most maxResults matches for query. A response without
// an items array means no matches.
func (c *Client) Volumes(ctx context.Context, query string, maxResults int) ([]Volume, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned %s: %s", resp.Status, body)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if payload.Items == nil {
		return []Volume{}, nil
	}
	return payload.Items, nil
}
