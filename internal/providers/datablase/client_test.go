package datablase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "sekrit"})
}

func TestFetchTeamsMapsUpstreamShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Errorf("auth header = %q", got)
		}
		w.Write([]byte(`[{
			"team_id": "t1",
			"url_slug": "hades-tigers",
			"full_name": "Hades Tigers",
			"nickname": "Tigers",
			"location": "Hades",
			"team_abbreviation": "HAT",
			"division": "Wild Low",
			"league": "Wild",
			"team_main_color": "#5c1c1c",
			"team_emoji": "0x1F405"
		}]`))
	})

	teams, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("FetchTeams failed: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("teams = %d", len(teams))
	}
	team := teams[0]
	if team.ID != "t1" || team.Slug != "hades-tigers" || team.Abbreviation != "HAT" {
		t.Errorf("unexpected mapping: %+v", team)
	}
}

func TestFetchPlayersMapsPosition(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"player_id": "p1", "url_slug": "york-silk", "player_name": "York Silk", "team_id": "t1", "position_type": "BATTER"},
			{"player_id": "p2", "url_slug": "nerd-pacheco", "player_name": "Nerd Pacheco", "team_id": "t1", "position_type": "PITCHER"},
			{"player_id": "p3", "url_slug": "betsy-trombone", "player_name": "Betsy Trombone", "team_id": "t1", "position_type": "???"}
		]`))
	})

	players, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("FetchPlayers failed: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("players = %d", len(players))
	}
	if players[0].Position != "LINEUP" || players[1].Position != "ROTATION" || players[2].Position != "SHADOWS" {
		t.Errorf("positions = %q, %q, %q", players[0].Position, players[1].Position, players[2].Position)
	}
}

func TestFetchPlayerStatsQueryAndMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("type") != "season" || q.Get("group") != "pitching" || q.Get("playerId") != "p1" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[{
			"group": "pitching",
			"splits": [{
				"season": 3,
				"postseason": true,
				"stat": {"innings": 42.1, "earned_run_average": 2.56, "strikeouts_pitched": 55},
				"team": {"team_id": "t1", "nickname": "Tigers"}
			}]
		}]`))
	})

	splits, err := client.FetchPlayerStats(context.Background(), "p1", stats.GroupPitching)
	if err != nil {
		t.Fatalf("FetchPlayerStats failed: %v", err)
	}
	if len(splits) != 1 {
		t.Fatalf("splits = %d", len(splits))
	}
	s := splits[0]
	if s.Season != 3 || !s.Postseason || s.Group != stats.GroupPitching {
		t.Errorf("split header wrong: %+v", s)
	}
	if s.Pitching == nil || s.Pitching.EarnedRunAverage != 2.56 || s.Pitching.StrikeoutsPitched != 55 {
		t.Errorf("pitching line wrong: %+v", s.Pitching)
	}
	if s.Batting != nil {
		t.Error("batting should be nil for a pitching split")
	}
}

func TestFetchTeamPlayerStatsAttributesPlayers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("teamId") != "t1" || q.Get("season") != "2" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[{
			"group": "hitting",
			"splits": [{
				"season": 2,
				"stat": {"hits": 120, "at_bats": 400},
				"player": {"id": "p1", "fullName": "York Silk"},
				"team": {"team_id": "t1", "nickname": "Tigers"}
			}]
		}]`))
	})

	lines, err := client.FetchTeamPlayerStats(context.Background(), "t1", 2)
	if err != nil {
		t.Fatalf("FetchTeamPlayerStats failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0].PlayerID != "p1" || lines[0].PlayerName != "York Silk" {
		t.Errorf("attribution wrong: %+v", lines[0])
	}
	if lines[0].Batting == nil || lines[0].Batting.Hits != 120 {
		t.Errorf("batting line wrong: %+v", lines[0].Batting)
	}
}

func TestFetchSeasonGames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("season"); got != "1" {
			t.Errorf("season = %q", got)
		}
		w.Write([]byte(`[{
			"game_id": "g1",
			"season": 1,
			"day": 0,
			"home_team": "t1",
			"home_team_name": "Hades Tigers",
			"home_score": 5,
			"away_team": "t2",
			"away_team_name": "Philly Pies",
			"away_score": 4,
			"is_postseason": false,
			"game_complete": true
		}]`))
	})

	payload, err := client.FetchSeasonGames(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchSeasonGames failed: %v", err)
	}
	if payload.Season != 1 || len(payload.Games) != 1 {
		t.Fatalf("payload = %+v", payload)
	}
	g := payload.Games[0]
	if g.ID != "g1" || g.HomeScore != 5 || !g.Complete {
		t.Errorf("game mapping wrong: %+v", g)
	}
}

func TestFetchLeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q", got)
		}
		w.Write([]byte(`[{
			"stat_name": "home_runs",
			"label": "Home Runs",
			"group": "hitting",
			"leaders": [{"player_id": "p1", "player_name": "York Silk", "team_id": "t1", "team_name": "Tigers", "value": 48}]
		}]`))
	})

	categories, err := client.FetchLeaders(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("FetchLeaders failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Category != "home_runs" {
		t.Fatalf("categories = %+v", categories)
	}
	if categories[0].Group != stats.GroupBatting {
		t.Errorf("group = %q", categories[0].Group)
	}
	if categories[0].Leaders[0].Value != 48 {
		t.Errorf("value = %v", categories[0].Leaders[0].Value)
	}
}

func TestFetchCurrentSeason(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/current" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"season": 24}`))
	})

	season, err := client.FetchCurrentSeason(context.Background())
	if err != nil {
		t.Fatalf("FetchCurrentSeason failed: %v", err)
	}
	if season != 24 {
		t.Errorf("season = %d, want 24", season)
	}
}

func TestGetMapsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetReportsUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "flooded", http.StatusInternalServerError)
	})

	_, err := client.FetchTeams(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL("http://x/"); got != "http://x" {
		t.Errorf("trailing slash = %q", got)
	}
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Errorf("empty = %q", got)
	}
}
