package datablase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
)

// Config controls how the datablase client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches precomputed stats from the datablase API and maps them to
// domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a datablase client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchTeams retrieves every team known to the stats database.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload []teamResponse
	if err := c.get(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}

	result := make([]teams.Team, 0, len(payload))
	for _, t := range payload {
		result = append(result, mapTeam(t))
	}
	return result, nil
}

// FetchPlayers retrieves the full player index.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var payload []playerResponse
	if err := c.get(ctx, "/players", nil, &payload); err != nil {
		return nil, err
	}

	result := make([]players.Player, 0, len(payload))
	for _, p := range payload {
		result = append(result, mapPlayer(p))
	}
	return result, nil
}

// FetchPlayerStats retrieves one player's per-season splits for a stat group.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID string, group stats.Group) ([]stats.Split, error) {
	q := url.Values{}
	q.Set("type", "season")
	q.Set("group", upstreamGroup(group))
	q.Set("playerId", playerID)

	var payload []statsResponse
	if err := c.get(ctx, "/stats", q, &payload); err != nil {
		return nil, err
	}

	splits := make([]stats.Split, 0)
	for _, block := range payload {
		for _, s := range block.Splits {
			splits = append(splits, mapSplit(block.Group, s))
		}
	}
	return splits, nil
}

// FetchTeamPlayerStats retrieves one stat line per roster member for a season.
func (c *Client) FetchTeamPlayerStats(ctx context.Context, teamID string, season int) ([]stats.PlayerSplit, error) {
	q := url.Values{}
	q.Set("type", "season")
	q.Set("group", groupHitting+","+groupPitching)
	q.Set("teamId", teamID)
	q.Set("season", strconv.Itoa(season))

	var payload []statsResponse
	if err := c.get(ctx, "/stats", q, &payload); err != nil {
		return nil, err
	}

	lines := make([]stats.PlayerSplit, 0)
	for _, block := range payload {
		for _, s := range block.Splits {
			lines = append(lines, stats.PlayerSplit{
				PlayerID:   s.Player.ID,
				PlayerName: s.Player.FullName,
				Split:      mapSplit(block.Group, s),
			})
		}
	}
	return lines, nil
}

// FetchSeasonGames retrieves the ordered game list for a season.
func (c *Client) FetchSeasonGames(ctx context.Context, season int) (domaingames.SeasonGames, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))

	var payload []gameResponse
	if err := c.get(ctx, "/games", q, &payload); err != nil {
		return domaingames.SeasonGames{}, err
	}

	list := make([]domaingames.Game, 0, len(payload))
	for _, g := range payload {
		list = append(list, mapGame(g))
	}
	return domaingames.SeasonGames{Season: season, Games: list}, nil
}

// FetchStandings retrieves win/loss records for a season.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]teams.Record, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))

	var payload []standingsRowResponse
	if err := c.get(ctx, "/standings", q, &payload); err != nil {
		return nil, err
	}

	records := make([]teams.Record, 0, len(payload))
	for _, row := range payload {
		records = append(records, mapRecord(row))
	}
	return records, nil
}

// FetchLeaders retrieves the per-category leaderboards for a season.
func (c *Client) FetchLeaders(ctx context.Context, season, limit int) ([]stats.LeaderCategory, error) {
	if limit <= 0 {
		limit = defaultLeaderLimit
	}
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("limit", strconv.Itoa(limit))

	var payload []leaderCategoryResponse
	if err := c.get(ctx, "/leaders", q, &payload); err != nil {
		return nil, err
	}

	categories := make([]stats.LeaderCategory, 0, len(payload))
	for _, cat := range payload {
		categories = append(categories, mapLeaderCategory(cat))
	}
	return categories, nil
}

// FetchCurrentSeason retrieves the latest season number with recorded games.
func (c *Client) FetchCurrentSeason(ctx context.Context) (int, error) {
	var payload currentSeasonResponse
	if err := c.get(ctx, "/seasons/current", nil, &payload); err != nil {
		return 0, err
	}
	return payload.Season, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return providers.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("datablase: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
