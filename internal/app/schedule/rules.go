package schedule

import "time"

// The sim publishes no wall-clock timestamps; dates are reconstructed from
// (season, day) using the calendar rules below. Seasons are the 1-based
// in-universe season numbers.
const (
	regularSeasonDays = 99
	seasonWeek        = 7 * 24 * time.Hour
)

// Season 1 opened Monday 2020-07-20 at 16:00 UTC; regular-season days advance
// one hour at a time from there.
var seasonOneStart = time.Date(2020, time.July, 20, 16, 0, 0, 0, time.UTC)

// seasonStartOverrides records seasons whose opening slipped off the weekly
// cadence. Seasons after an override extrapolate weekly from it.
var seasonStartOverrides = map[int]time.Time{
	// The long siesta: season 12 opened two weeks after season 11.
	12: seasonOneStart.Add(12 * seasonWeek),
}

// hourSlips records mid-season outages that pushed the remaining days of a
// season back by whole hours.
type hourSlip struct {
	season  int
	fromDay int
	hours   int
}

var hourSlips = []hourSlip{
	// Season 3 restart: days 72+ ran one hour late.
	{season: 3, fromDay: 72, hours: 1},
}

// SeasonStart returns the time of day 0 of the given season.
func SeasonStart(season int) time.Time {
	baseSeason, base := 1, seasonOneStart
	for s, t := range seasonStartOverrides {
		if s <= season && s > baseSeason {
			baseSeason, base = s, t
		}
	}
	return base.Add(time.Duration(season-baseSeason) * seasonWeek)
}

// postseasonFirstTime returns the time of the first postseason day (day 99).
// The postseason always opens on the Saturday of the season week; the hour
// shifted across eras.
func postseasonFirstTime(season int) time.Time {
	start := SeasonStart(season)
	// start is Monday 16:00 UTC; Saturday midnight is 5 days after Monday
	// midnight.
	saturday := start.Add(-16 * time.Hour).Add(5 * 24 * time.Hour)

	switch {
	case season < 8:
		return saturday.Add(13 * time.Hour)
	case season < 11:
		return saturday.Add(16 * time.Hour)
	default:
		return saturday.Add(17 * time.Hour)
	}
}

// GameTime reconstructs the wall-clock start of the given (season, day).
func GameTime(season, day int) time.Time {
	if day < regularSeasonDays {
		t := SeasonStart(season).Add(time.Duration(day) * time.Hour)
		for _, slip := range hourSlips {
			if slip.season == season && day >= slip.fromDay {
				t = t.Add(time.Duration(slip.hours) * time.Hour)
			}
		}
		return t
	}
	return postseasonTime(season, day-regularSeasonDays)
}

// postseasonTime walks forward one hour per postseason day. From season 11
// on, no games ran between 00:00 and 12:59 UTC; a day landing there advances
// to 13:00.
func postseasonTime(season, offset int) time.Time {
	t := postseasonFirstTime(season)
	for i := 0; i < offset; i++ {
		t = t.Add(time.Hour)
		t = skipOvernight(season, t)
	}
	return skipOvernight(season, t)
}

func skipOvernight(season int, t time.Time) time.Time {
	if season < 11 {
		return t
	}
	if h := t.Hour(); h < 13 {
		return t.Add(time.Duration(13-h) * time.Hour)
	}
	return t
}
