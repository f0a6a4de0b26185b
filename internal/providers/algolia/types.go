package algolia

import (
	"net/http"
	"time"
)

const (
	defaultIndex       = "blaseball-reference"
	defaultHitsPerPage = 20
	defaultHTTPTimeout = 5 * time.Second
)

type queryRequest struct {
	Params string `json:"params"`
}

type hitResponse struct {
	ObjectID string `json:"objectID"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	URLSlug  string `json:"url_slug"`
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

type queryResponse struct {
	Hits []hitResponse `json:"hits"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func resolveIndex(index string) string {
	if index == "" {
		return defaultIndex
	}
	return index
}
