package teams

import (
	"context"
	"errors"
	"testing"

	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/store"
	"github.com/jmaliksi/blaseball-reference.com/internal/teststubs"
	"github.com/jmaliksi/blaseball-reference.com/internal/testutil"
)

func teamStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.SetTeams([]domainteams.Team{
		testutil.SampleTeam("t1", "hades-tigers", "Hades Tigers"),
		testutil.SampleTeam("t2", "baltimore-crabs", "Baltimore Crabs"),
	})
	return s
}

func TestTeamsSortedByFullName(t *testing.T) {
	svc := NewService(teamStore(), &teststubs.StubStatsProvider{})

	list := svc.Teams()
	if len(list) != 2 {
		t.Fatalf("teams = %d, want 2", len(list))
	}
	if list[0].Slug != "baltimore-crabs" || list[1].Slug != "hades-tigers" {
		t.Errorf("order = %q, %q", list[0].Slug, list[1].Slug)
	}
}

func TestPlayerStatsJoinsSlugsFromIndex(t *testing.T) {
	s := teamStore()
	tigers, _ := s.GetTeamBySlug("hades-tigers")
	s.SetPlayers([]domainplayers.Player{
		testutil.SamplePlayer("p1", "york-silk", "York Silk", tigers),
	})

	stub := &teststubs.StubStatsProvider{
		PlayerSplits: []stats.PlayerSplit{
			{PlayerID: "p1", PlayerName: "York Silk", Split: testutil.SampleBattingSplit(2, "Tigers")},
			{PlayerID: "p9", PlayerName: "Unknown Signing", Split: testutil.SampleBattingSplit(2, "Tigers")},
		},
	}
	svc := NewService(s, stub)

	lines, err := svc.PlayerStats(context.Background(), "t1", 2)
	if err != nil {
		t.Fatalf("PlayerStats failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].PlayerSlug != "york-silk" {
		t.Errorf("joined slug = %q", lines[0].PlayerSlug)
	}
	// Players the poller has not indexed yet keep an empty slug.
	if lines[1].PlayerSlug != "" {
		t.Errorf("unindexed slug = %q", lines[1].PlayerSlug)
	}
}

func TestStandingsOrdersAndDerives(t *testing.T) {
	stub := &teststubs.StubStatsProvider{
		Standings: []domainteams.Record{
			{Team: domainteams.Team{ID: "t2"}, Season: 3, Wins: 45, Losses: 54},
			{Team: domainteams.Team{ID: "t1"}, Season: 3, Wins: 64, Losses: 35},
		},
	}
	svc := NewService(teamStore(), stub)

	standings, err := svc.Standings(context.Background(), 3)
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if standings.Season != 3 {
		t.Errorf("season = %d", standings.Season)
	}
	if len(standings.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(standings.Rows))
	}

	lead := standings.Rows[0]
	if lead.Team.Slug != "hades-tigers" {
		t.Errorf("leader = %+v", lead.Team)
	}
	if lead.GamesBack != 0 {
		t.Errorf("leader games back = %v", lead.GamesBack)
	}
	if pct := lead.WinningPercentage; pct < 0.646 || pct > 0.647 {
		t.Errorf("winning pct = %v", pct)
	}
	// (64-45 + 54-35) / 2 = 19.
	if gb := standings.Rows[1].GamesBack; gb != 19 {
		t.Errorf("games back = %v, want 19", gb)
	}
}

func TestStandingsTiesBreakOnLosses(t *testing.T) {
	stub := &teststubs.StubStatsProvider{
		Standings: []domainteams.Record{
			{Team: domainteams.Team{ID: "t2"}, Wins: 50, Losses: 49},
			{Team: domainteams.Team{ID: "t1"}, Wins: 50, Losses: 40},
		},
	}
	svc := NewService(teamStore(), stub)

	standings, err := svc.Standings(context.Background(), 1)
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if standings.Rows[0].Team.ID != "t1" {
		t.Errorf("fewer losses should lead: %+v", standings.Rows[0].Team)
	}
}

func TestStandingsPropagatesError(t *testing.T) {
	stub := &teststubs.StubStatsProvider{Err: errors.New("datablase down")}
	svc := NewService(teamStore(), stub)

	if _, err := svc.Standings(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
}
