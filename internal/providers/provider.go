package providers

import (
	"context"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/search"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// ReferenceProvider fetches the slow-moving reference data (team and player
// indexes) that the poller keeps warm in memory.
type ReferenceProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// StatsProvider fetches precomputed stat lines and game lists from the
// external stats database. All identifiers are upstream identifiers passed
// straight through.
type StatsProvider interface {
	ReferenceProvider
	FetchPlayerStats(ctx context.Context, playerID string, group stats.Group) ([]stats.Split, error)
	FetchTeamPlayerStats(ctx context.Context, teamID string, season int) ([]stats.PlayerSplit, error)
	FetchSeasonGames(ctx context.Context, season int) (domaingames.SeasonGames, error)
	FetchStandings(ctx context.Context, season int) ([]teams.Record, error)
	FetchLeaders(ctx context.Context, season, limit int) ([]stats.LeaderCategory, error)
	FetchCurrentSeason(ctx context.Context) (int, error)
}

// SearchProvider queries the external search index.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}
