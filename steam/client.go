// Package steam resolves user-supplied identifiers to canonical 64-bit
// SteamIDs and fetches player summaries from the Steam Web API.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.steampowered.com"
	defaultTimeout = 8 * time.Second
)

// Client is a stateless Steam Web API client. It holds only the credential
// and an HTTP client, so constructing one per command invocation is fine.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	baseURL = strings.TrimSpace(strings.TrimRight(baseURL, "/"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// HasAPIKey reports whether a credential is configured. Vanity resolution
// and summary fetches require one.
func (c *Client) HasAPIKey() bool {
	return c != nil && c.apiKey != ""
}

// ResolveVanity resolves a vanity profile name to a SteamID64. The remote
// endpoint signals a miss with success != 1 rather than an HTTP error.
func (c *Client) ResolveVanity(ctx context.Context, name string) (string, error) {
	if !c.HasAPIKey() {
		return "", ErrMissingAPIKey
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty vanity name", ErrNotFound)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("vanityurl", name)

	var out struct {
		Response struct {
			Success int    `json:"success"`
			SteamID string `json:"steamid"`
		} `json:"response"`
	}
	if err := c.getJSON(ctx, "/ISteamUser/ResolveVanityURL/v1/", params, &out); err != nil {
		return "", err
	}
	if out.Response.Success != 1 || strings.TrimSpace(out.Response.SteamID) == "" {
		return "", fmt.Errorf("%w: vanity %q", ErrNotFound, name)
	}
	return out.Response.SteamID, nil
}

// GetPlayerSummary fetches the summary for exactly one SteamID64. An empty
// player list (private account, bad id) is ErrNotFound, not a zero value.
func (c *Client) GetPlayerSummary(ctx context.Context, steamID64 string) (PlayerSummary, error) {
	if !c.HasAPIKey() {
		return PlayerSummary{}, ErrMissingAPIKey
	}
	steamID64 = strings.TrimSpace(steamID64)
	if steamID64 == "" {
		return PlayerSummary{}, fmt.Errorf("%w: empty steamid", ErrNotFound)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamids", steamID64)

	var out struct {
		Response struct {
			Players []PlayerSummary `json:"players"`
		} `json:"response"`
	}
	if err := c.getJSON(ctx, "/ISteamUser/GetPlayerSummaries/v2/", params, &out); err != nil {
		return PlayerSummary{}, err
	}
	if len(out.Response.Players) == 0 {
		return PlayerSummary{}, fmt.Errorf("%w: steamid %s", ErrNotFound, steamID64)
	}
	return out.Response.Players[0], nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: http %d from %s", ErrTransport, resp.StatusCode, path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrMalformed, path, err)
	}
	return nil
}
