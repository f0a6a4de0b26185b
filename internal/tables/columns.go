package tables

// Column pairs a stable key with its display label. The same definitions
// drive the JSON view models and the CSV header row.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// BattingColumns defines the batting table layout.
var BattingColumns = []Column{
	{Key: "season", Label: "Season"},
	{Key: "team", Label: "Team"},
	{Key: "pa", Label: "PA"},
	{Key: "ab", Label: "AB"},
	{Key: "r", Label: "R"},
	{Key: "h", Label: "H"},
	{Key: "2b", Label: "2B"},
	{Key: "3b", Label: "3B"},
	{Key: "hr", Label: "HR"},
	{Key: "rbi", Label: "RBI"},
	{Key: "bb", Label: "BB"},
	{Key: "so", Label: "SO"},
	{Key: "sb", Label: "SB"},
	{Key: "cs", Label: "CS"},
	{Key: "ba", Label: "BA"},
	{Key: "obp", Label: "OBP"},
	{Key: "slg", Label: "SLG"},
	{Key: "ops", Label: "OPS"},
}

// RosterBattingColumns and RosterPitchingColumns reuse the stat layout keyed
// by player instead of season, for team roster tables.
var (
	RosterBattingColumns  = rosterColumns(BattingColumns)
	RosterPitchingColumns = rosterColumns(PitchingColumns)
)

func rosterColumns(cols []Column) []Column {
	out := make([]Column, 0, len(cols)-1)
	out = append(out, Column{Key: "player", Label: "Player"})
	return append(out, cols[2:]...)
}

// PitchingColumns defines the pitching table layout.
var PitchingColumns = []Column{
	{Key: "season", Label: "Season"},
	{Key: "team", Label: "Team"},
	{Key: "g", Label: "G"},
	{Key: "w", Label: "W"},
	{Key: "l", Label: "L"},
	{Key: "ip", Label: "IP"},
	{Key: "ha", Label: "HA"},
	{Key: "bb", Label: "BB"},
	{Key: "so", Label: "SO"},
	{Key: "hra", Label: "HRA"},
	{Key: "er", Label: "ER"},
	{Key: "sho", Label: "SHO"},
	{Key: "era", Label: "ERA"},
	{Key: "whip", Label: "WHIP"},
}
