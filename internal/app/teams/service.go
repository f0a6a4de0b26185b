package teams

import (
	"context"
	"sort"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// Store defines the slice of the reference cache the team pages need.
type Store interface {
	ListTeams() []domainteams.Team
	GetTeamBySlug(slug string) (domainteams.Team, bool)
	GetTeamByID(id string) (domainteams.Team, bool)
	GetPlayerByID(id string) (players.Player, bool)
}

// StatsFetcher fetches team-scoped data from the stats database.
type StatsFetcher interface {
	FetchTeamPlayerStats(ctx context.Context, teamID string, season int) ([]stats.PlayerSplit, error)
	FetchStandings(ctx context.Context, season int) ([]domainteams.Record, error)
}

// Service coordinates team page data.
type Service struct {
	store Store
	stats StatsFetcher
}

// NewService constructs a Service.
func NewService(store Store, stats StatsFetcher) *Service {
	return &Service{store: store, stats: stats}
}

// Teams returns the team list ordered by full name.
func (s *Service) Teams() []domainteams.Team {
	list := s.store.ListTeams()
	sort.Slice(list, func(i, j int) bool {
		return list[i].FullName < list[j].FullName
	})
	return list
}

// BySlug resolves a team from the warmed index.
func (s *Service) BySlug(slug string) (domainteams.Team, bool) {
	return s.store.GetTeamBySlug(slug)
}

// PlayerStats fetches one stat line per roster member for a season, joining
// player slugs from the warmed index so rows can link to player pages.
func (s *Service) PlayerStats(ctx context.Context, teamID string, season int) ([]stats.PlayerSplit, error) {
	lines, err := s.stats.FetchTeamPlayerStats(ctx, teamID, season)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		if player, ok := s.store.GetPlayerByID(line.PlayerID); ok {
			lines[i].PlayerSlug = player.Slug
		}
	}
	return lines, nil
}

// Standings derives the presentational standings for a season: records
// joined with the team index, ordered by wins, with winning percentage and
// games back computed from the leader's record.
func (s *Service) Standings(ctx context.Context, season int) (domainteams.Standings, error) {
	records, err := s.stats.FetchStandings(ctx, season)
	if err != nil {
		return domainteams.Standings{}, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Wins != records[j].Wins {
			return records[i].Wins > records[j].Wins
		}
		return records[i].Losses < records[j].Losses
	})

	rows := make([]domainteams.StandingsRow, 0, len(records))
	for _, rec := range records {
		if full, ok := s.store.GetTeamByID(rec.Team.ID); ok {
			rec.Team = full
		}
		row := domainteams.StandingsRow{Record: rec}
		if games := rec.Wins + rec.Losses; games > 0 {
			row.WinningPercentage = float64(rec.Wins) / float64(games)
		}
		if len(records) > 0 {
			leader := records[0]
			row.GamesBack = (float64(leader.Wins-rec.Wins) + float64(rec.Losses-leader.Losses)) / 2
		}
		rows = append(rows, row)
	}

	return domainteams.Standings{Season: season, Rows: rows}, nil
}
