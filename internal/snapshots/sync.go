package snapshots

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
)

// GamesProvider fetches a season's game list for snapshotting.
type GamesProvider interface {
	FetchSeasonGames(ctx context.Context, season int) (domaingames.SeasonGames, error)
	FetchCurrentSeason(ctx context.Context) (int, error)
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled     bool
	KeepSeasons int
	Interval    time.Duration // delay between season fetches during backfill
}

// Syncer backfills season schedule snapshots on boot so explicit-season
// schedule pages can be served when the live fetch fails.
type Syncer struct {
	provider GamesProvider
	writer   *Writer
	cfg      SyncConfig
	logger   *slog.Logger
	sleep    func(ctx context.Context, d time.Duration)
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider GamesProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger) *Syncer {
	if cfg.KeepSeasons <= 0 {
		cfg.KeepSeasons = 24
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &Syncer{
		provider: provider,
		writer:   writer,
		cfg:      cfg,
		logger:   logger,
		sleep:    sleepCtx,
	}
}

// Run performs a one-time backfill of the retained seasons, spaced by
// Interval to respect the upstream quota. Callers should run this in a
// goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return
	}

	current, err := s.provider.FetchCurrentSeason(ctx)
	if err != nil {
		logging.Warn(s.logger, "snapshot sync: current season unavailable", "err", err)
		return
	}

	first := current - s.cfg.KeepSeasons + 1
	if first < 1 {
		first = 1
	}
	logging.Info(s.logger, "snapshot sync starting",
		"first_season", first,
		"current_season", current,
		"interval", s.cfg.Interval.String(),
	)

	for season := first; season <= current; season++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.fetchAndWrite(ctx, season)
		if season < current {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
	logging.Info(s.logger, "snapshot sync complete", "seasons", current-first+1)
}

func (s *Syncer) fetchAndWrite(ctx context.Context, season int) {
	payload, err := s.provider.FetchSeasonGames(ctx, season)
	if err != nil {
		logging.Warn(s.logger, "snapshot sync fetch failed", slog.Int(logging.FieldSeason, season), "err", err)
		return
	}
	if len(payload.Games) == 0 {
		return
	}
	if err := s.writer.WriteScheduleSnapshot(season, payload); err != nil {
		logging.Warn(s.logger, "snapshot sync write failed", slog.Int(logging.FieldSeason, season), "err", err)
		return
	}
	logging.Info(s.logger, "snapshot written",
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(payload.Games)),
	)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
