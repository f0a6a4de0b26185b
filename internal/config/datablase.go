package config

const (
	envDatablaseBaseURL = "DATABLASE_BASE_URL"
	envDatablaseAPIKey  = "DATABLASE_API_KEY"

	defaultDatablaseBaseURL = "https://api.blaseball-reference.com/v2"
)

// DatablaseConfig controls how we talk to the stats API.
type DatablaseConfig struct {
	BaseURL string
	APIKey  string
}

func loadDatablase() DatablaseConfig {
	return DatablaseConfig{
		BaseURL: envOrDefault(envDatablaseBaseURL, defaultDatablaseBaseURL),
		APIKey:  envOrDefault(envDatablaseAPIKey, ""),
	}
}
