package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	LeadersCount int
	Datablase    DatablaseConfig
	Algolia      AlgoliaConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotSyncConfig
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		LeadersCount: intEnvOrDefault(envLeadersCount, defaultLeadersCount),
		Datablase:    loadDatablase(),
		Algolia:      loadAlgolia(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshotSync(),
	}
}
