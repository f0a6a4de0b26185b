package datablase

import (
	"strings"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.TeamID,
		Slug:         t.URLSlug,
		FullName:     t.FullName,
		Nickname:     t.Nickname,
		Location:     t.Location,
		Abbreviation: t.Abbreviation,
		Division:     t.Division,
		League:       t.League,
		MainColor:    t.MainColor,
		Emoji:        t.Emoji,
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:       p.PlayerID,
		Slug:     p.URLSlug,
		Name:     p.PlayerName,
		Team:     teams.Team{ID: p.TeamID},
		Position: mapPosition(p.Position),
		Deceased: p.Deceased,
		Meta: players.PlayerMeta{
			UpstreamPlayerID: p.PlayerID,
			DebutSeason:      p.DebutSeason,
			DebutDay:         p.DebutGameday,
			Bat:              p.Bat,
			Armor:            p.Armor,
			Ritual:           p.Ritual,
		},
	}
}

func mapPosition(raw string) players.Position {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LINEUP", "BATTER":
		return players.PositionLineup
	case "ROTATION", "PITCHER":
		return players.PositionRotation
	default:
		return players.PositionShadows
	}
}

func mapSplit(group string, s splitResponse) stats.Split {
	split := stats.Split{
		Season:     s.Season,
		Postseason: s.Postseason,
		TeamID:     s.Team.TeamID,
		TeamName:   s.Team.Nickname,
	}
	if strings.EqualFold(group, groupPitching) {
		split.Group = stats.GroupPitching
		split.Pitching = mapPitching(s.Stat)
	} else {
		split.Group = stats.GroupBatting
		split.Batting = mapBatting(s.Stat)
	}
	return split
}

func mapBatting(v statValues) *stats.BattingLine {
	return &stats.BattingLine{
		PlateAppearances:   v.PlateAppearances,
		AtBats:             v.AtBats,
		Runs:               v.Runs,
		Hits:               v.Hits,
		Doubles:            v.Doubles,
		Triples:            v.Triples,
		HomeRuns:           v.HomeRuns,
		RunsBattedIn:       v.RunsBattedIn,
		Walks:              v.Walks,
		Strikeouts:         v.Strikeouts,
		StolenBases:        v.StolenBases,
		CaughtStealing:     v.CaughtStealing,
		SacrificeFlies:     v.SacrificeFlies,
		BattingAverage:     v.BattingAverage,
		OnBasePercentage:   v.OnBasePercentage,
		SluggingPercentage: v.SluggingPercentage,
		OnBasePlusSlugging: v.OnBasePlusSlugging,
	}
}

func mapPitching(v statValues) *stats.PitchingLine {
	return &stats.PitchingLine{
		Games:              v.Games,
		Wins:               v.Wins,
		Losses:             v.Losses,
		InningsPitched:     v.InningsPitched,
		HitsAllowed:        v.HitsAllowed,
		WalksIssued:        v.WalksIssued,
		StrikeoutsPitched:  v.StrikeoutsPitched,
		HomeRunsAllowed:    v.HomeRunsAllowed,
		EarnedRuns:         v.EarnedRuns,
		Shutouts:           v.Shutouts,
		EarnedRunAverage:   v.EarnedRunAverage,
		WalksHitsPerInning: v.WalksHitsPerInning,
	}
}

func mapGame(g gameResponse) domaingames.Game {
	return domaingames.Game{
		ID:           g.GameID,
		Season:       g.Season,
		Day:          g.Day,
		HomeTeamID:   g.HomeTeamID,
		HomeTeamName: g.HomeTeamName,
		HomeScore:    g.HomeScore,
		AwayTeamID:   g.AwayTeamID,
		AwayTeamName: g.AwayTeamName,
		AwayScore:    g.AwayScore,
		Postseason:   g.Postseason,
		Complete:     g.GameComplete,
	}
}

func mapRecord(row standingsRowResponse) teams.Record {
	return teams.Record{
		Team:   teams.Team{ID: row.TeamID},
		Season: row.Season,
		Wins:   row.Wins,
		Losses: row.Losses,
	}
}

func mapLeaderCategory(cat leaderCategoryResponse) stats.LeaderCategory {
	leaders := make([]stats.Leader, 0, len(cat.Leaders))
	for _, l := range cat.Leaders {
		leaders = append(leaders, stats.Leader{
			PlayerID:   l.PlayerID,
			PlayerName: l.PlayerName,
			TeamID:     l.TeamID,
			TeamName:   l.TeamName,
			Value:      l.Value,
		})
	}
	group := stats.GroupBatting
	if strings.EqualFold(cat.Group, groupPitching) {
		group = stats.GroupPitching
	}
	return stats.LeaderCategory{
		Category: cat.StatName,
		Label:    cat.Label,
		Group:    group,
		Leaders:  leaders,
	}
}

func upstreamGroup(group stats.Group) string {
	if group == stats.GroupPitching {
		return groupPitching
	}
	return groupHitting
}
