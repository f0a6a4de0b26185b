package search

// ResultType tags what kind of entity a search hit points at.
type ResultType string

const (
	ResultPlayer ResultType = "player"
	ResultTeam   ResultType = "team"
)

// Result is one normalized search hit.
type Result struct {
	Type     ResultType `json:"type"`
	ID       string     `json:"id"`
	Slug     string     `json:"slug"`
	Name     string     `json:"name"`
	TeamID   string     `json:"teamId,omitempty"`
	TeamName string     `json:"teamName,omitempty"`
}

// Results is the payload returned by /search.
type Results struct {
	Query string   `json:"query"`
	Hits  []Result `json:"hits"`
}
