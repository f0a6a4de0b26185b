package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envLeadersCount = "LEADERS_COUNT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envSnapshotSync = "SNAPSHOT_SYNC_ENABLED"
	envSnapshotKeep = "SNAPSHOT_KEEP_SEASONS"
	envSnapshotRate = "SNAPSHOT_SYNC_INTERVAL"

	defaultPort = "4000"
	// Reference data (teams/players) changes at most a few times per in-game
	// day; a conservative refresh respects the datablase quota.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "datablase"
	defaultLeadersCount = 10
	defaultMetricsPort  = "9090"
	defaultSnapshotSync = true
	defaultSnapshotKeep = 24
	// Snapshot fetch cadence during season backfill; spaced to stay under the
	// upstream quota and leave headroom for page traffic.
	defaultSnapshotInterval = 90 * Duration(time.Second)
)
