package config

const (
	envAlgoliaAppID  = "ALGOLIA_APP_ID"
	envAlgoliaAPIKey = "ALGOLIA_API_KEY"
	envAlgoliaIndex  = "ALGOLIA_INDEX"

	defaultAlgoliaIndex = "blaseball-reference"
)

// AlgoliaConfig controls how we talk to the search index.
// Search is disabled (degrades to empty results) when AppID is unset.
type AlgoliaConfig struct {
	AppID  string
	APIKey string
	Index  string
}

func loadAlgolia() AlgoliaConfig {
	return AlgoliaConfig{
		AppID:  envOrDefault(envAlgoliaAppID, ""),
		APIKey: envOrDefault(envAlgoliaAPIKey, ""),
		Index:  envOrDefault(envAlgoliaIndex, defaultAlgoliaIndex),
	}
}
