package server

import (
	"log/slog"

	"github.com/jmaliksi/blaseball-reference.com/internal/config"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
	"github.com/jmaliksi/blaseball-reference.com/internal/snapshots"
)

// snapshotComponents bundles the snapshot tier: the read side served to
// handlers, the write side shared by the admin endpoint and the syncer.
type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.StatsProvider, logger *slog.Logger) snapshotComponents {
	base := cfg.Snapshots.SnapshotFolder
	writer := snapshots.NewWriter(base, cfg.Snapshots.KeepSeasons)

	var syncer *snapshots.Syncer
	if cfg.Snapshots.Enabled {
		syncer = snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
			Enabled:     true,
			KeepSeasons: cfg.Snapshots.KeepSeasons,
			Interval:    cfg.Snapshots.Interval,
		}, logger)
	}

	return snapshotComponents{
		store:  snapshots.NewFSStore(base),
		writer: writer,
		syncer: syncer,
	}
}
