package datablase

// Upstream JSON shapes, mirrored as-is. These are DTOs with no behavior;
// normalization happens in the mapper.

type teamResponse struct {
	TeamID       string `json:"team_id"`
	URLSlug      string `json:"url_slug"`
	FullName     string `json:"full_name"`
	Nickname     string `json:"nickname"`
	Location     string `json:"location"`
	Abbreviation string `json:"team_abbreviation"`
	Division     string `json:"division"`
	League       string `json:"league"`
	MainColor    string `json:"team_main_color"`
	Emoji        string `json:"team_emoji"`
}

type playerResponse struct {
	PlayerID     string `json:"player_id"`
	URLSlug      string `json:"url_slug"`
	PlayerName   string `json:"player_name"`
	TeamID       string `json:"team_id"`
	Position     string `json:"position_type"`
	Deceased     bool   `json:"deceased"`
	DebutSeason  int    `json:"debut_season"`
	DebutGameday int    `json:"debut_gameday"`
	Bat          string `json:"bat,omitempty"`
	Armor        string `json:"armor,omitempty"`
	Ritual       string `json:"ritual,omitempty"`
}

type statValues struct {
	// hitting
	PlateAppearances   int     `json:"plate_appearances"`
	AtBats             int     `json:"at_bats"`
	Runs               int     `json:"runs"`
	Hits               int     `json:"hits"`
	Doubles            int     `json:"doubles"`
	Triples            int     `json:"triples"`
	HomeRuns           int     `json:"home_runs"`
	RunsBattedIn       int     `json:"runs_batted_in"`
	Walks              int     `json:"walks"`
	Strikeouts         int     `json:"strikeouts"`
	StolenBases        int     `json:"stolen_bases"`
	CaughtStealing     int     `json:"caught_stealing"`
	SacrificeFlies     int     `json:"sacrifice_flies"`
	BattingAverage     float64 `json:"batting_average"`
	OnBasePercentage   float64 `json:"on_base_percentage"`
	SluggingPercentage float64 `json:"slugging"`
	OnBasePlusSlugging float64 `json:"on_base_plus_slugging"`

	// pitching
	Games              int     `json:"games"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	InningsPitched     float64 `json:"innings"`
	HitsAllowed        int     `json:"hits_allowed"`
	WalksIssued        int     `json:"walks_issued"`
	StrikeoutsPitched  int     `json:"strikeouts_pitched"`
	HomeRunsAllowed    int     `json:"home_runs_allowed"`
	EarnedRuns         int     `json:"earned_runs"`
	Shutouts           int     `json:"shutouts"`
	EarnedRunAverage   float64 `json:"earned_run_average"`
	WalksHitsPerInning float64 `json:"whip"`
}

type splitResponse struct {
	Season     int        `json:"season"`
	Postseason bool       `json:"postseason"`
	Stat       statValues `json:"stat"`
	Player     struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
	} `json:"player"`
	Team struct {
		TeamID   string `json:"team_id"`
		Nickname string `json:"nickname"`
	} `json:"team"`
}

type statsResponse struct {
	Group  string          `json:"group"`
	Splits []splitResponse `json:"splits"`
}

type gameResponse struct {
	GameID       string `json:"game_id"`
	Season       int    `json:"season"`
	Day          int    `json:"day"`
	HomeTeamID   string `json:"home_team"`
	HomeTeamName string `json:"home_team_name"`
	HomeScore    int    `json:"home_score"`
	AwayTeamID   string `json:"away_team"`
	AwayTeamName string `json:"away_team_name"`
	AwayScore    int    `json:"away_score"`
	Postseason   bool   `json:"is_postseason"`
	GameComplete bool   `json:"game_complete"`
}

type standingsRowResponse struct {
	TeamID string `json:"team_id"`
	Season int    `json:"season"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type leaderResponse struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	TeamID     string  `json:"team_id"`
	TeamName   string  `json:"team_name"`
	Value      float64 `json:"value"`
}

type leaderCategoryResponse struct {
	StatName string           `json:"stat_name"`
	Label    string           `json:"label"`
	Group    string           `json:"group"`
	Leaders  []leaderResponse `json:"leaders"`
}

type currentSeasonResponse struct {
	Season int `json:"season"`
}
