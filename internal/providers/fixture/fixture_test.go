package fixture

import (
	"context"
	"testing"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
)

func TestFixtureServesConsistentData(t *testing.T) {
	p := New()
	ctx := context.Background()

	teams, err := p.FetchTeams(ctx)
	if err != nil || len(teams) == 0 {
		t.Fatalf("FetchTeams = %d teams, err %v", len(teams), err)
	}
	teamIDs := map[string]bool{}
	for _, team := range teams {
		if team.ID == "" || team.Slug == "" {
			t.Errorf("team missing identity: %+v", team)
		}
		teamIDs[team.ID] = true
	}

	players, err := p.FetchPlayers(ctx)
	if err != nil || len(players) == 0 {
		t.Fatalf("FetchPlayers = %d players, err %v", len(players), err)
	}
	for _, player := range players {
		if !teamIDs[player.Team.ID] {
			t.Errorf("player %s references unknown team %q", player.Slug, player.Team.ID)
		}
	}
}

func TestFixturePlayerStats(t *testing.T) {
	p := New()
	players, _ := p.FetchPlayers(context.Background())

	splits, err := p.FetchPlayerStats(context.Background(), players[0].ID, stats.GroupBatting)
	if err != nil {
		t.Fatalf("FetchPlayerStats failed: %v", err)
	}
	for _, s := range splits {
		if s.Group != stats.GroupBatting || s.Batting == nil {
			t.Errorf("split not batting-shaped: %+v", s)
		}
	}
}

func TestFixtureSeasonGamesMatchCurrentSeason(t *testing.T) {
	p := New()
	season, err := p.FetchCurrentSeason(context.Background())
	if err != nil || season < 1 {
		t.Fatalf("FetchCurrentSeason = %d, err %v", season, err)
	}

	payload, err := p.FetchSeasonGames(context.Background(), season)
	if err != nil {
		t.Fatalf("FetchSeasonGames failed: %v", err)
	}
	if payload.Season != season || len(payload.Games) == 0 {
		t.Fatalf("payload = season %d with %d games", payload.Season, len(payload.Games))
	}
}

func TestFixtureSearch(t *testing.T) {
	p := New()
	hits, err := p.Search(context.Background(), "york")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected at least one hit for a fixture player name")
	}
}
