package config

import "time"

// SnapshotSyncConfig controls schedule snapshot backfill/prune behavior.
type SnapshotSyncConfig struct {
	Enabled        bool
	KeepSeasons    int           // how many seasons of schedules to retain
	Interval       time.Duration // delay between snapshot fetches during backfill
	AdminToken     string        // guards the refresh endpoint
	SnapshotFolder string        // base path for snapshots
}

func loadSnapshotSync() SnapshotSyncConfig {
	return SnapshotSyncConfig{
		Enabled:        boolEnvOrDefault(envSnapshotSync, defaultSnapshotSync),
		KeepSeasons:    intEnvOrDefault(envSnapshotKeep, defaultSnapshotKeep),
		Interval:       durationEnvOrDefault(envSnapshotRate, defaultSnapshotInterval),
		AdminToken:     envOrDefault(envAdminToken, ""),
		SnapshotFolder: "data/snapshots",
	}
}
