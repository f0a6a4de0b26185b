package tables

import (
	"sort"
	"strconv"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
)

// Table is a rendered stat table: a column layout plus string-formatted rows.
type Table struct {
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

const careerLabel = "Career"

// BattingTable renders per-season batting splits plus a career totals row.
// Splits are ordered by season; postseason splits sort after the regular
// split of the same season.
func BattingTable(splits []stats.Split) Table {
	ordered := orderSplits(splits)

	rows := make([][]string, 0, len(ordered)+1)
	for _, s := range ordered {
		if s.Batting == nil {
			continue
		}
		rows = append(rows, battingRow(seasonLabel(s), s.TeamName, *s.Batting))
	}
	if len(rows) > 0 {
		rows = append(rows, battingRow(careerLabel, "", CareerBattingTotals(ordered)))
	}
	return Table{Columns: BattingColumns, Rows: rows}
}

// PitchingTable renders per-season pitching splits plus a career totals row.
func PitchingTable(splits []stats.Split) Table {
	ordered := orderSplits(splits)

	rows := make([][]string, 0, len(ordered)+1)
	for _, s := range ordered {
		if s.Pitching == nil {
			continue
		}
		rows = append(rows, pitchingRow(seasonLabel(s), s.TeamName, *s.Pitching))
	}
	if len(rows) > 0 {
		rows = append(rows, pitchingRow(careerLabel, "", CareerPitchingTotals(ordered)))
	}
	return Table{Columns: PitchingColumns, Rows: rows}
}

// CareerBattingTotals sums counting stats across splits and recomputes the
// rate stats from the summed components. Zero denominators yield 0.
func CareerBattingTotals(splits []stats.Split) stats.BattingLine {
	var total stats.BattingLine
	for _, s := range splits {
		if s.Batting == nil {
			continue
		}
		b := s.Batting
		total.PlateAppearances += b.PlateAppearances
		total.AtBats += b.AtBats
		total.Runs += b.Runs
		total.Hits += b.Hits
		total.Doubles += b.Doubles
		total.Triples += b.Triples
		total.HomeRuns += b.HomeRuns
		total.RunsBattedIn += b.RunsBattedIn
		total.Walks += b.Walks
		total.Strikeouts += b.Strikeouts
		total.StolenBases += b.StolenBases
		total.CaughtStealing += b.CaughtStealing
		total.SacrificeFlies += b.SacrificeFlies
	}

	total.BattingAverage = ratio(float64(total.Hits), float64(total.AtBats))
	total.OnBasePercentage = ratio(float64(total.Hits+total.Walks), float64(total.AtBats+total.Walks+total.SacrificeFlies))
	singles := total.Hits - total.Doubles - total.Triples - total.HomeRuns
	totalBases := singles + 2*total.Doubles + 3*total.Triples + 4*total.HomeRuns
	total.SluggingPercentage = ratio(float64(totalBases), float64(total.AtBats))
	total.OnBasePlusSlugging = total.OnBasePercentage + total.SluggingPercentage
	return total
}

// CareerPitchingTotals sums counting stats across splits and recomputes ERA
// and WHIP from the summed components.
func CareerPitchingTotals(splits []stats.Split) stats.PitchingLine {
	var total stats.PitchingLine
	for _, s := range splits {
		if s.Pitching == nil {
			continue
		}
		p := s.Pitching
		total.Games += p.Games
		total.Wins += p.Wins
		total.Losses += p.Losses
		total.InningsPitched += p.InningsPitched
		total.HitsAllowed += p.HitsAllowed
		total.WalksIssued += p.WalksIssued
		total.StrikeoutsPitched += p.StrikeoutsPitched
		total.HomeRunsAllowed += p.HomeRunsAllowed
		total.EarnedRuns += p.EarnedRuns
		total.Shutouts += p.Shutouts
	}

	total.EarnedRunAverage = ratio(9*float64(total.EarnedRuns), total.InningsPitched)
	total.WalksHitsPerInning = ratio(float64(total.WalksIssued+total.HitsAllowed), total.InningsPitched)
	return total
}

// RosterBattingTable renders one batting line per roster member, ordered by
// player name. Lines without batting stats are skipped.
func RosterBattingTable(lines []stats.PlayerSplit) Table {
	ordered := orderLines(lines)

	rows := make([][]string, 0, len(ordered))
	for _, l := range ordered {
		if l.Batting == nil {
			continue
		}
		rows = append(rows, append([]string{l.PlayerName}, battingStatCells(*l.Batting)...))
	}
	return Table{Columns: RosterBattingColumns, Rows: rows}
}

// RosterPitchingTable renders one pitching line per roster member.
func RosterPitchingTable(lines []stats.PlayerSplit) Table {
	ordered := orderLines(lines)

	rows := make([][]string, 0, len(ordered))
	for _, l := range ordered {
		if l.Pitching == nil {
			continue
		}
		rows = append(rows, append([]string{l.PlayerName}, pitchingStatCells(*l.Pitching)...))
	}
	return Table{Columns: RosterPitchingColumns, Rows: rows}
}

func battingRow(season, team string, b stats.BattingLine) []string {
	return append([]string{season, team}, battingStatCells(b)...)
}

func battingStatCells(b stats.BattingLine) []string {
	return []string{
		itoa(b.PlateAppearances),
		itoa(b.AtBats),
		itoa(b.Runs),
		itoa(b.Hits),
		itoa(b.Doubles),
		itoa(b.Triples),
		itoa(b.HomeRuns),
		itoa(b.RunsBattedIn),
		itoa(b.Walks),
		itoa(b.Strikeouts),
		itoa(b.StolenBases),
		itoa(b.CaughtStealing),
		rate3(b.BattingAverage),
		rate3(b.OnBasePercentage),
		rate3(b.SluggingPercentage),
		rate3(b.OnBasePlusSlugging),
	}
}

func pitchingRow(season, team string, p stats.PitchingLine) []string {
	return append([]string{season, team}, pitchingStatCells(p)...)
}

func pitchingStatCells(p stats.PitchingLine) []string {
	return []string{
		itoa(p.Games),
		itoa(p.Wins),
		itoa(p.Losses),
		strconv.FormatFloat(p.InningsPitched, 'f', 1, 64),
		itoa(p.HitsAllowed),
		itoa(p.WalksIssued),
		itoa(p.StrikeoutsPitched),
		itoa(p.HomeRunsAllowed),
		itoa(p.EarnedRuns),
		itoa(p.Shutouts),
		rate2(p.EarnedRunAverage),
		rate2(p.WalksHitsPerInning),
	}
}

func orderLines(lines []stats.PlayerSplit) []stats.PlayerSplit {
	ordered := append([]stats.PlayerSplit(nil), lines...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PlayerName < ordered[j].PlayerName
	})
	return ordered
}

func orderSplits(splits []stats.Split) []stats.Split {
	ordered := append([]stats.Split(nil), splits...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Season != ordered[j].Season {
			return ordered[i].Season < ordered[j].Season
		}
		return !ordered[i].Postseason && ordered[j].Postseason
	})
	return ordered
}

func seasonLabel(s stats.Split) string {
	label := strconv.Itoa(s.Season)
	if s.Postseason {
		label += " (postseason)"
	}
	return label
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func rate3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func rate2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
