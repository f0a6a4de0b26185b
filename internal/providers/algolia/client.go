package algolia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/search"
)

// Config controls how the search client reaches the Algolia REST API.
type Config struct {
	AppID       string
	APIKey      string
	Index       string
	BaseURL     string // overrides the per-app DSN host, used in tests
	HTTPClient  *http.Client
	HitsPerPage int
}

// Client queries an Algolia index and maps hits to typed search results.
type Client struct {
	appID       string
	apiKey      string
	index       string
	baseURL     string
	httpClient  httpDoer
	hitsPerPage int
}

// NewClient constructs a search client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" && cfg.AppID != "" {
		base = fmt.Sprintf("https://%s-dsn.algolia.net", strings.ToLower(cfg.AppID))
	}
	hits := cfg.HitsPerPage
	if hits <= 0 {
		hits = defaultHitsPerPage
	}
	return &Client{
		appID:       cfg.AppID,
		apiKey:      cfg.APIKey,
		index:       resolveIndex(cfg.Index),
		baseURL:     strings.TrimSuffix(base, "/"),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		hitsPerPage: hits,
	}
}

// Search queries the index for players and teams matching the query string.
func (c *Client) Search(ctx context.Context, query string) ([]search.Result, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("algolia: no application configured")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("hitsPerPage", strconv.Itoa(c.hitsPerPage))
	body, err := json.Marshal(queryRequest{Params: params.Encode()})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/1/indexes/%s/query", c.baseURL, url.PathEscape(c.index))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-Application-Id", c.appID)
	req.Header.Set("X-Algolia-API-Key", c.apiKey)
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("algolia: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	results := make([]search.Result, 0, len(payload.Hits))
	for _, hit := range payload.Hits {
		if r, ok := mapHit(hit); ok {
			results = append(results, r)
		}
	}
	return results, nil
}
