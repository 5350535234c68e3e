// Package search provides real-time web search for grounding model prompts
// in current information.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ErrUnavailable indicates no search provider is configured.
var ErrUnavailable = errors.New("search service unavailable")

// Snippet is a single search result fragment.
type Snippet struct {
	Text string
	Link string
}

// Provider runs a web search query.
type Provider interface {
	Query(ctx context.Context, q string) ([]Snippet, error)
}

// Config holds search provider configuration.
type Config struct {
	APIKey    string
	BaseURL   string
	TimeoutMs int
}

// LoadConfig reads search configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   "https://serpapi.com",
		TimeoutMs: 10000,
	}
	if v := os.Getenv("LICHENG_SEARCH_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LICHENG_SEARCH_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}

// NewProvider creates a Provider from the given configuration. Without an
// API key the returned provider fails every query with ErrUnavailable.
func NewProvider(cfg Config) Provider {
	if cfg.APIKey == "" {
		return disabledProvider{}
	}
	return &serpProvider{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
	}
}

// serpProvider queries a SerpAPI-compatible endpoint.
type serpProvider struct {
	cfg  Config
	http *http.Client
}

type serpResponse struct {
	OrganicResults []struct {
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic_results"`
}

func (p *serpProvider) Query(ctx context.Context, q string) ([]Snippet, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", q)
	params.Set("api_key", p.cfg.APIKey)

	reqURL := p.cfg.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	snippets := make([]Snippet, 0, len(body.OrganicResults))
	for _, r := range body.OrganicResults {
		if r.Snippet == "" {
			continue
		}
		snippets = append(snippets, Snippet{Text: r.Snippet, Link: r.Link})
	}
	return snippets, nil
}

type disabledProvider struct{}

func (disabledProvider) Query(context.Context, string) ([]Snippet, error) {
	return nil, fmt.Errorf("%w: no api key configured", ErrUnavailable)
}
