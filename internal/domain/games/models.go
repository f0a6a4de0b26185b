package games

// Game is the canonical game shape exposed by the service. Season and Day are
// the in-universe calendar units; wall-clock times are reconstructed by the
// schedule package, not stored upstream.
type Game struct {
	ID           string `json:"id"`
	Season       int    `json:"season"`
	Day          int    `json:"day"`
	HomeTeamID   string `json:"homeTeamId"`
	HomeTeamName string `json:"homeTeamName"`
	HomeScore    int    `json:"homeScore"`
	AwayTeamID   string `json:"awayTeamId"`
	AwayTeamName string `json:"awayTeamName"`
	AwayScore    int    `json:"awayScore"`
	Postseason   bool   `json:"postseason"`
	Complete     bool   `json:"complete"`
}

// SeasonGames is the raw payload for one season's game list.
type SeasonGames struct {
	Season int    `json:"season"`
	Games  []Game `json:"games"`
}
