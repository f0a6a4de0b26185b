package store

import (
	"testing"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

func TestTeamLookups(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{
		{ID: "t1", Slug: "hades-tigers", FullName: "Hades Tigers"},
		{ID: "t2", Slug: "philly-pies", FullName: "Philly Pies"},
	})

	if got := s.ListTeams(); len(got) != 2 {
		t.Fatalf("ListTeams = %d, want 2", len(got))
	}
	if team, ok := s.GetTeamBySlug("hades-tigers"); !ok || team.ID != "t1" {
		t.Errorf("GetTeamBySlug = %+v, %v", team, ok)
	}
	if team, ok := s.GetTeamByID("t2"); !ok || team.Slug != "philly-pies" {
		t.Errorf("GetTeamByID = %+v, %v", team, ok)
	}
	if _, ok := s.GetTeamBySlug("ohio-worms"); ok {
		t.Error("expected miss for unknown slug")
	}
}

func TestSetTeamsReplacesIndex(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{{ID: "t1", Slug: "hades-tigers"}})
	s.SetTeams([]teams.Team{{ID: "t2", Slug: "philly-pies"}})

	if _, ok := s.GetTeamBySlug("hades-tigers"); ok {
		t.Error("old team survived replacement")
	}
	if _, ok := s.GetTeamBySlug("philly-pies"); !ok {
		t.Error("new team missing")
	}
}

func TestSetPlayersJoinsTeamShape(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{{ID: "t1", Slug: "hades-tigers", FullName: "Hades Tigers"}})
	s.SetPlayers([]players.Player{
		{ID: "p1", Slug: "york-silk", Name: "York Silk", Team: teams.Team{ID: "t1"}},
		{ID: "p2", Slug: "nerd-pacheco", Name: "Nerd Pacheco", Team: teams.Team{ID: "t9"}},
	})

	p, ok := s.GetPlayerBySlug("york-silk")
	if !ok {
		t.Fatal("player missing")
	}
	if p.Team.FullName != "Hades Tigers" {
		t.Errorf("team not joined: %+v", p.Team)
	}

	// Unknown team IDs keep the upstream stub shape.
	p2, _ := s.GetPlayerBySlug("nerd-pacheco")
	if p2.Team.ID != "t9" || p2.Team.FullName != "" {
		t.Errorf("unexpected team for unjoined player: %+v", p2.Team)
	}

	if got, ok := s.GetPlayerByID("p1"); !ok || got.Slug != "york-silk" {
		t.Errorf("GetPlayerByID = %+v, %v", got, ok)
	}
}

func TestCurrentSeason(t *testing.T) {
	s := NewMemoryStore()
	if s.CurrentSeason() != 0 {
		t.Errorf("fresh store season = %d", s.CurrentSeason())
	}
	s.SetCurrentSeason(12)
	if s.CurrentSeason() != 12 {
		t.Errorf("season = %d, want 12", s.CurrentSeason())
	}
}
