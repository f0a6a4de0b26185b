package teams

// Team represents the normalized team shape (datablase-aligned).
// Kept in its own package to keep domain models modular and reusable across providers/fixtures.
type Team struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	FullName     string `json:"fullName"`
	Nickname     string `json:"nickname"`
	Location     string `json:"location"`
	Abbreviation string `json:"abbreviation"`
	Division     string `json:"division"`
	League       string `json:"league"`
	MainColor    string `json:"mainColor"`
	Emoji        string `json:"emoji"`
}

// Record is a single team's win/loss line for one season.
type Record struct {
	Team   Team `json:"team"`
	Season int  `json:"season"`
	Wins   int  `json:"wins"`
	Losses int  `json:"losses"`
}

// StandingsRow is a Record enriched with presentational derivations.
type StandingsRow struct {
	Record
	WinningPercentage float64 `json:"winningPercentage"`
	GamesBack         float64 `json:"gamesBack"`
}

// Standings is the payload returned by /standings?season=N.
type Standings struct {
	Season int            `json:"season"`
	Rows   []StandingsRow `json:"rows"`
}
