package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/teststubs"
	"github.com/jmaliksi/blaseball-reference.com/internal/testutil"
)

func teamStub() *teststubs.StubStatsProvider {
	tigers := testutil.SampleTeam("t1", "hades-tigers", "Hades Tigers")
	fridays := testutil.SampleTeam("t2", "hawaii-fridays", "Hawai'i Fridays")
	return &teststubs.StubStatsProvider{
		Teams: []domainteams.Team{fridays, tigers},
		Players: []domainplayers.Player{
			testutil.SamplePlayer("p1", "york-silk", "York Silk", tigers),
		},
		PlayerSplits: []stats.PlayerSplit{
			{PlayerID: "p1", PlayerName: "York Silk", Split: testutil.SampleBattingSplit(2, "Hades Tigers")},
		},
		Standings: []domainteams.Record{
			{Team: domainteams.Team{ID: "t2"}, Season: 2, Wins: 60, Losses: 39},
			{Team: domainteams.Team{ID: "t1"}, Season: 2, Wins: 70, Losses: 29},
		},
		Season: 2,
	}
}

func TestTeamsSortedByFullName(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Teams []domainteams.Team `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &body)

	if len(body.Teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(body.Teams))
	}
	if body.Teams[0].Slug != "hades-tigers" {
		t.Errorf("first team = %q, want hades-tigers", body.Teams[0].Slug)
	}
}

func TestTeamBySlug(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/teams/hades-tigers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Team    domainteams.Team    `json:"team"`
		Season  int                 `json:"season"`
		Players []stats.PlayerSplit `json:"players"`
	}
	testutil.DecodeJSON(t, rr, &body)

	if body.Team.ID != "t1" {
		t.Errorf("team id = %q", body.Team.ID)
	}
	// Defaults to the latest known season.
	if body.Season != 2 {
		t.Errorf("season = %d, want 2", body.Season)
	}
	if len(body.Players) != 1 || body.Players[0].PlayerName != "York Silk" {
		t.Errorf("unexpected players: %+v", body.Players)
	}
	if body.Players[0].PlayerSlug != "york-silk" {
		t.Errorf("player slug = %q, want york-silk", body.Players[0].PlayerSlug)
	}
}

func TestTeamCSVExport(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/teams/hades-tigers?format=csv&group=batting", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Player,PA,AB") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "York Silk,") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestTeamCSVUnknownGroup(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/teams/hades-tigers?format=csv&group=fielding", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestTeamBySlugNotFound(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/teams/ohio-worms", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestTeamBySlugBadSeason(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/teams/hades-tigers?season=twelve", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestStandingsDerivations(t *testing.T) {
	router, _ := newRouter(t, teamStub())

	rr := testutil.Serve(router, http.MethodGet, "/standings?season=2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body domainteams.Standings
	testutil.DecodeJSON(t, rr, &body)

	if len(body.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(body.Rows))
	}
	// Ordered by wins; records join the full team shape from the index.
	if body.Rows[0].Team.Slug != "hades-tigers" {
		t.Errorf("leader = %q, want hades-tigers", body.Rows[0].Team.Slug)
	}
	if got := body.Rows[0].GamesBack; got != 0 {
		t.Errorf("leader games back = %v, want 0", got)
	}
	// (70-60 + 39-29) / 2 = 10.
	if got := body.Rows[1].GamesBack; got != 10 {
		t.Errorf("games back = %v, want 10", got)
	}
	if pct := body.Rows[0].WinningPercentage; pct < 0.70 || pct > 0.71 {
		t.Errorf("winning pct = %v", pct)
	}
}

func TestStandingsUpstreamFailure(t *testing.T) {
	stub := teamStub()
	router, _ := newRouter(t, stub)
	stub.Err = errors.New("datablase down")

	rr := testutil.Serve(router, http.MethodGet, "/standings", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}
