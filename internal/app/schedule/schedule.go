package schedule

import (
	"sort"
	"time"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/timeutil"
)

// DayBucket is one in-universe day's games with its reconstructed start time.
type DayBucket struct {
	Season     int                `json:"season"`
	Day        int                `json:"day"`
	Postseason bool               `json:"postseason"`
	StartTime  time.Time          `json:"startTime"`
	Games      []domaingames.Game `json:"games"`
}

// DateGroup collects the day buckets that fall on one calendar date, for
// date-headed schedule rendering.
type DateGroup struct {
	Date string      `json:"date"`
	Days []DayBucket `json:"days"`
}

// Schedule is the payload for a season's (optionally team-filtered) schedule.
type Schedule struct {
	Season int         `json:"season"`
	TeamID string      `json:"teamId,omitempty"`
	Dates  []DateGroup `json:"dates"`
}

// Buckets groups a flat game list into ordered day buckets with reconstructed
// wall-clock start times. An empty list yields empty buckets (the caller's
// loading state). Days are ordered ascending regardless of input order;
// within a day, games order by home team name then ID.
func Buckets(season int, list []domaingames.Game) []DayBucket {
	byDay := make(map[int][]domaingames.Game)
	for _, g := range list {
		byDay[g.Day] = append(byDay[g.Day], g)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		games := byDay[day]
		sort.Slice(games, func(i, j int) bool {
			if games[i].HomeTeamName != games[j].HomeTeamName {
				return games[i].HomeTeamName < games[j].HomeTeamName
			}
			return games[i].ID < games[j].ID
		})
		buckets = append(buckets, DayBucket{
			Season:     season,
			Day:        day,
			Postseason: day >= regularSeasonDays,
			StartTime:  GameTime(season, day),
			Games:      games,
		})
	}
	return buckets
}

// GroupByDate collects consecutive day buckets under their calendar date.
func GroupByDate(buckets []DayBucket) []DateGroup {
	groups := make([]DateGroup, 0)
	for _, b := range buckets {
		date := timeutil.FormatDate(b.StartTime.UTC())
		if n := len(groups); n > 0 && groups[n-1].Date == date {
			groups[n-1].Days = append(groups[n-1].Days, b)
			continue
		}
		groups = append(groups, DateGroup{Date: date, Days: []DayBucket{b}})
	}
	return groups
}

// FilterTeam keeps only the games involving the given team ID.
func FilterTeam(list []domaingames.Game, teamID string) []domaingames.Game {
	if teamID == "" {
		return list
	}
	filtered := make([]domaingames.Game, 0, len(list))
	for _, g := range list {
		if g.HomeTeamID == teamID || g.AwayTeamID == teamID {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// Build assembles the full schedule payload for a season.
func Build(season int, teamID string, list []domaingames.Game) Schedule {
	filtered := FilterTeam(list, teamID)
	return Schedule{
		Season: season,
		TeamID: teamID,
		Dates:  GroupByDate(Buckets(season, filtered)),
	}
}
