package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	domainsearch "github.com/jmaliksi/blaseball-reference.com/internal/domain/search"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// StubStatsProvider is a test double for providers.StatsProvider. Any Err
// field set takes precedence over the corresponding data field.
type StubStatsProvider struct {
	Teams   []domainteams.Team
	Players []domainplayers.Player

	Splits       map[stats.Group][]stats.Split
	PlayerSplits []stats.PlayerSplit
	Games        domaingames.SeasonGames
	Standings    []domainteams.Record
	Leaders      []stats.LeaderCategory
	Season       int

	Err         error
	GamesErr    error
	FetchCalls  atomic.Int32
	GamesCalls  atomic.Int32
	SeasonCalls atomic.Int32
}

func (s *StubStatsProvider) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	s.FetchCalls.Add(1)
	return s.Teams, s.Err
}

func (s *StubStatsProvider) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	s.FetchCalls.Add(1)
	return s.Players, s.Err
}

func (s *StubStatsProvider) FetchPlayerStats(ctx context.Context, playerID string, group stats.Group) ([]stats.Split, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Splits[group], nil
}

func (s *StubStatsProvider) FetchTeamPlayerStats(ctx context.Context, teamID string, season int) ([]stats.PlayerSplit, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.PlayerSplits, nil
}

func (s *StubStatsProvider) FetchSeasonGames(ctx context.Context, season int) (domaingames.SeasonGames, error) {
	s.GamesCalls.Add(1)
	if s.GamesErr != nil {
		return domaingames.SeasonGames{}, s.GamesErr
	}
	if s.Err != nil {
		return domaingames.SeasonGames{}, s.Err
	}
	return s.Games, nil
}

func (s *StubStatsProvider) FetchStandings(ctx context.Context, season int) ([]domainteams.Record, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Standings, nil
}

func (s *StubStatsProvider) FetchLeaders(ctx context.Context, season, limit int) ([]stats.LeaderCategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Leaders, nil
}

func (s *StubStatsProvider) FetchCurrentSeason(ctx context.Context) (int, error) {
	s.SeasonCalls.Add(1)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Season, nil
}

// StubSearchProvider is a test double for providers.SearchProvider.
type StubSearchProvider struct {
	Hits []domainsearch.Result
	Err  error
}

func (s *StubSearchProvider) Search(ctx context.Context, query string) ([]domainsearch.Result, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Hits, nil
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Seasons map[int]domaingames.SeasonGames
	LoadErr error
}

func (s *StubSnapshotStore) LoadSeasonGames(season int) (domaingames.SeasonGames, error) {
	if s.LoadErr != nil {
		return domaingames.SeasonGames{}, s.LoadErr
	}
	payload, ok := s.Seasons[season]
	if !ok {
		return domaingames.SeasonGames{}, errors.New("snapshot not found")
	}
	return payload, nil
}
