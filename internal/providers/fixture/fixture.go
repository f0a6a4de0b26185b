package fixture

import (
	"context"
	"strings"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/search"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// Provider returns a static data set useful for local development and
// bootstrapping without upstream credentials.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

var fixtureTeams = []teams.Team{
	{ID: "team-fridays", Slug: "fridays", FullName: "Hawai'i Fridays", Nickname: "Fridays", Location: "Hawai'i", Abbreviation: "FRI", Division: "Wild Low", League: "Wild", MainColor: "#3ee652", Emoji: "🏝"},
	{ID: "team-tigers", Slug: "tigers", FullName: "Hades Tigers", Nickname: "Tigers", Location: "Hades", Abbreviation: "HAD", Division: "Wild High", League: "Wild", MainColor: "#5c1c1c", Emoji: "🐅"},
	{ID: "team-pies", Slug: "pies", FullName: "Philly Pies", Nickname: "Pies", Location: "Philly", Abbreviation: "PHIL", Division: "Mild High", League: "Mild", MainColor: "#399d8f", Emoji: "🥧"},
}

var fixturePlayers = []players.Player{
	{ID: "player-1", Slug: "nerd-pacheco", Name: "Nerd Pacheco", Team: fixtureTeams[0], Position: players.PositionLineup, Meta: players.PlayerMeta{UpstreamPlayerID: "player-1", DebutSeason: 1, DebutDay: 0}},
	{ID: "player-2", Slug: "york-silk", Name: "York Silk", Team: fixtureTeams[1], Position: players.PositionLineup, Meta: players.PlayerMeta{UpstreamPlayerID: "player-2", DebutSeason: 2, DebutDay: 14}},
	{ID: "player-3", Slug: "betsy-trombone", Name: "Betsy Trombone", Team: fixtureTeams[2], Position: players.PositionRotation, Meta: players.PlayerMeta{UpstreamPlayerID: "player-3", DebutSeason: 1, DebutDay: 0}},
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return append([]teams.Team(nil), fixtureTeams...), nil
}

// FetchPlayers returns a deterministic set of players.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return append([]players.Player(nil), fixturePlayers...), nil
}

// FetchPlayerStats returns a small, internally consistent set of splits.
func (p *Provider) FetchPlayerStats(ctx context.Context, playerID string, group stats.Group) ([]stats.Split, error) {
	_ = ctx
	_ = playerID
	if group == stats.GroupPitching {
		return []stats.Split{
			{Season: 1, TeamID: "team-pies", TeamName: "Pies", Group: stats.GroupPitching, Pitching: &stats.PitchingLine{
				Games: 25, Wins: 14, Losses: 6, InningsPitched: 221, HitsAllowed: 180, WalksIssued: 45,
				StrikeoutsPitched: 248, HomeRunsAllowed: 18, EarnedRuns: 74, Shutouts: 3,
				EarnedRunAverage: 3.01, WalksHitsPerInning: 1.018,
			}},
		}, nil
	}
	return []stats.Split{
		{Season: 1, TeamID: "team-fridays", TeamName: "Fridays", Group: stats.GroupBatting, Batting: &stats.BattingLine{
			PlateAppearances: 420, AtBats: 380, Runs: 64, Hits: 110, Doubles: 21, Triples: 4, HomeRuns: 18,
			RunsBattedIn: 59, Walks: 36, Strikeouts: 88, StolenBases: 11, CaughtStealing: 3, SacrificeFlies: 4,
			BattingAverage: 0.289, OnBasePercentage: 0.348, SluggingPercentage: 0.508, OnBasePlusSlugging: 0.856,
		}},
		{Season: 2, TeamID: "team-fridays", TeamName: "Fridays", Group: stats.GroupBatting, Batting: &stats.BattingLine{
			PlateAppearances: 431, AtBats: 389, Runs: 71, Hits: 118, Doubles: 25, Triples: 2, HomeRuns: 22,
			RunsBattedIn: 66, Walks: 38, Strikeouts: 82, StolenBases: 9, CaughtStealing: 4, SacrificeFlies: 4,
			BattingAverage: 0.303, OnBasePercentage: 0.362, SluggingPercentage: 0.548, OnBasePlusSlugging: 0.910,
		}},
	}, nil
}

// FetchTeamPlayerStats returns one sample line per fixture player on the team.
func (p *Provider) FetchTeamPlayerStats(ctx context.Context, teamID string, season int) ([]stats.PlayerSplit, error) {
	lines := make([]stats.PlayerSplit, 0)
	for _, pl := range fixturePlayers {
		if pl.Team.ID != teamID {
			continue
		}
		group := stats.GroupBatting
		if pl.Position == players.PositionRotation {
			group = stats.GroupPitching
		}
		splits, err := p.FetchPlayerStats(ctx, pl.ID, group)
		if err != nil || len(splits) == 0 {
			continue
		}
		split := splits[0]
		split.Season = season
		lines = append(lines, stats.PlayerSplit{PlayerID: pl.ID, PlayerName: pl.Name, Split: split})
	}
	return lines, nil
}

// FetchSeasonGames returns a compact season: three regular-season days and
// one postseason day.
func (p *Provider) FetchSeasonGames(ctx context.Context, season int) (domaingames.SeasonGames, error) {
	_ = ctx
	list := []domaingames.Game{
		{ID: "game-1", Season: season, Day: 0, HomeTeamID: "team-fridays", HomeTeamName: "Fridays", HomeScore: 5, AwayTeamID: "team-tigers", AwayTeamName: "Tigers", AwayScore: 2, Complete: true},
		{ID: "game-2", Season: season, Day: 1, HomeTeamID: "team-pies", HomeTeamName: "Pies", HomeScore: 3, AwayTeamID: "team-fridays", AwayTeamName: "Fridays", AwayScore: 4, Complete: true},
		{ID: "game-3", Season: season, Day: 2, HomeTeamID: "team-tigers", HomeTeamName: "Tigers", HomeScore: 7, AwayTeamID: "team-pies", AwayTeamName: "Pies", AwayScore: 1, Complete: true},
		{ID: "game-4", Season: season, Day: 99, HomeTeamID: "team-tigers", HomeTeamName: "Tigers", HomeScore: 0, AwayTeamID: "team-fridays", AwayTeamName: "Fridays", AwayScore: 0, Postseason: true},
	}
	return domaingames.SeasonGames{Season: season, Games: list}, nil
}

// FetchStandings returns records matching the fixture game results.
func (p *Provider) FetchStandings(ctx context.Context, season int) ([]teams.Record, error) {
	_ = ctx
	return []teams.Record{
		{Team: fixtureTeams[0], Season: season, Wins: 62, Losses: 37},
		{Team: fixtureTeams[1], Season: season, Wins: 58, Losses: 41},
		{Team: fixtureTeams[2], Season: season, Wins: 44, Losses: 55},
	}, nil
}

// FetchLeaders returns a single batting category.
func (p *Provider) FetchLeaders(ctx context.Context, season, limit int) ([]stats.LeaderCategory, error) {
	_ = ctx
	leaders := []stats.Leader{
		{PlayerID: "player-2", PlayerName: "York Silk", TeamID: "team-tigers", TeamName: "Tigers", Value: 48},
		{PlayerID: "player-1", PlayerName: "Nerd Pacheco", TeamID: "team-fridays", TeamName: "Fridays", Value: 22},
	}
	if limit > 0 && limit < len(leaders) {
		leaders = leaders[:limit]
	}
	return []stats.LeaderCategory{
		{Category: "home_runs", Label: "Home Runs", Group: stats.GroupBatting, Leaders: leaders},
	}, nil
}

// FetchCurrentSeason reports the latest fixture season.
func (p *Provider) FetchCurrentSeason(ctx context.Context) (int, error) {
	_ = ctx
	return 2, nil
}

// Search matches fixture players and teams by substring.
func (p *Provider) Search(ctx context.Context, query string) ([]search.Result, error) {
	_ = ctx
	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]search.Result, 0)
	if needle == "" {
		return results, nil
	}
	for _, pl := range fixturePlayers {
		if strings.Contains(strings.ToLower(pl.Name), needle) {
			results = append(results, search.Result{
				Type: search.ResultPlayer, ID: pl.ID, Slug: pl.Slug, Name: pl.Name,
				TeamID: pl.Team.ID, TeamName: pl.Team.Nickname,
			})
		}
	}
	for _, t := range fixtureTeams {
		if strings.Contains(strings.ToLower(t.FullName), needle) {
			results = append(results, search.Result{Type: search.ResultTeam, ID: t.ID, Slug: t.Slug, Name: t.FullName})
		}
	}
	return results, nil
}
