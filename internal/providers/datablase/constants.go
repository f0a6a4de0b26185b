package datablase

import "time"

const (
	defaultBaseURL     = "https://api.blaseball-reference.com/v2"
	defaultHTTPTimeout = 10 * time.Second
	defaultLeaderLimit = 10

	groupHitting  = "hitting"
	groupPitching = "pitching"
)
