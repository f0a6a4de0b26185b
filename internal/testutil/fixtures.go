package testutil

import (
	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided id and slug.
func SampleTeam(id, slug, name string) domainteams.Team {
	return domainteams.Team{
		ID:       id,
		Slug:     slug,
		FullName: name,
		Nickname: name,
		Division: "Wild Low",
		League:   "Wild",
	}
}

// SamplePlayer returns a minimal player fixture on the given team.
func SamplePlayer(id, slug, name string, team domainteams.Team) domainplayers.Player {
	return domainplayers.Player{
		ID:       id,
		Slug:     slug,
		Name:     name,
		Team:     team,
		Position: domainplayers.PositionLineup,
	}
}

// SampleGame returns a game fixture for the given season and day.
func SampleGame(id string, season, day int, home, away domainteams.Team) domaingames.Game {
	return domaingames.Game{
		ID:           id,
		Season:       season,
		Day:          day,
		HomeTeamID:   home.ID,
		HomeTeamName: home.FullName,
		AwayTeamID:   away.ID,
		AwayTeamName: away.FullName,
		Complete:     true,
	}
}

// SampleBattingSplit returns a one-season batting split with round numbers.
func SampleBattingSplit(season int, team string) stats.Split {
	return stats.Split{
		Season:   season,
		TeamName: team,
		Group:    stats.GroupBatting,
		Batting: &stats.BattingLine{
			PlateAppearances: 400,
			AtBats:           350,
			Runs:             60,
			Hits:             105,
			Doubles:          20,
			Triples:          5,
			HomeRuns:         10,
			RunsBattedIn:     55,
			Walks:            40,
			Strikeouts:       70,
			BattingAverage:   0.300,
		},
	}
}

// SamplePitchingSplit returns a one-season pitching split with round numbers.
func SamplePitchingSplit(season int, team string) stats.Split {
	return stats.Split{
		Season:   season,
		TeamName: team,
		Group:    stats.GroupPitching,
		Pitching: &stats.PitchingLine{
			Games:             30,
			Wins:              12,
			Losses:            8,
			InningsPitched:    180,
			HitsAllowed:       150,
			WalksIssued:       45,
			StrikeoutsPitched: 170,
			HomeRunsAllowed:   18,
			EarnedRuns:        60,
			EarnedRunAverage:  3.00,
		},
	}
}
