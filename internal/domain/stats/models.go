package stats

// Group selects which family of stat lines a table shows.
type Group string

const (
	GroupBatting  Group = "batting"
	GroupPitching Group = "pitching"
)

// Valid reports whether the group names a known stat family.
func (g Group) Valid() bool {
	return g == GroupBatting || g == GroupPitching
}

// BattingLine holds the counting and rate stats for one batting split.
type BattingLine struct {
	PlateAppearances   int     `json:"plateAppearances"`
	AtBats             int     `json:"atBats"`
	Runs               int     `json:"runs"`
	Hits               int     `json:"hits"`
	Doubles            int     `json:"doubles"`
	Triples            int     `json:"triples"`
	HomeRuns           int     `json:"homeRuns"`
	RunsBattedIn       int     `json:"runsBattedIn"`
	Walks              int     `json:"walks"`
	Strikeouts         int     `json:"strikeouts"`
	StolenBases        int     `json:"stolenBases"`
	CaughtStealing     int     `json:"caughtStealing"`
	SacrificeFlies     int     `json:"sacrificeFlies"`
	BattingAverage     float64 `json:"battingAverage"`
	OnBasePercentage   float64 `json:"onBasePercentage"`
	SluggingPercentage float64 `json:"sluggingPercentage"`
	OnBasePlusSlugging float64 `json:"onBasePlusSlugging"`
}

// PitchingLine holds the counting and rate stats for one pitching split.
type PitchingLine struct {
	Games              int     `json:"games"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	InningsPitched     float64 `json:"inningsPitched"`
	HitsAllowed        int     `json:"hitsAllowed"`
	WalksIssued        int     `json:"walksIssued"`
	StrikeoutsPitched  int     `json:"strikeoutsPitched"`
	HomeRunsAllowed    int     `json:"homeRunsAllowed"`
	EarnedRuns         int     `json:"earnedRuns"`
	Shutouts           int     `json:"shutouts"`
	EarnedRunAverage   float64 `json:"earnedRunAverage"`
	WalksHitsPerInning float64 `json:"walksHitsPerInning"`
}

// Split is one per-season statistical line for a player or team. Exactly one
// of Batting/Pitching is set, matching Group.
type Split struct {
	Season     int           `json:"season"`
	Postseason bool          `json:"postseason"`
	TeamID     string        `json:"teamId"`
	TeamName   string        `json:"teamName"`
	Group      Group         `json:"group"`
	Batting    *BattingLine  `json:"batting,omitempty"`
	Pitching   *PitchingLine `json:"pitching,omitempty"`
}

// PlayerSplit attributes a Split to a player, for team-page tables that list
// one line per roster member.
type PlayerSplit struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	PlayerSlug string `json:"playerSlug,omitempty"`
	Split
}

// Leader is a single entry in a leaderboard category.
type Leader struct {
	PlayerID   string  `json:"playerId"`
	PlayerName string  `json:"playerName"`
	TeamID     string  `json:"teamId"`
	TeamName   string  `json:"teamName"`
	Value      float64 `json:"value"`
}

// LeaderCategory is one stat category's top-N list for a season.
type LeaderCategory struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Group    Group    `json:"group"`
	Leaders  []Leader `json:"leaders"`
}

// SeasonLeaders is the payload returned by /leaders?season=N.
type SeasonLeaders struct {
	Season     int              `json:"season"`
	Categories []LeaderCategory `json:"categories"`
}
