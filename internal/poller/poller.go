package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/metrics"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
)

const defaultInterval = 5 * time.Minute

// ReferenceStore receives refreshed reference data.
type ReferenceStore interface {
	SetTeams([]teams.Team)
	SetPlayers([]players.Player)
	SetCurrentSeason(int)
}

// SeasonProvider reports the latest season with recorded games.
type SeasonProvider interface {
	FetchCurrentSeason(ctx context.Context) (int, error)
}

// Poller refreshes the in-memory reference data (teams, players, current
// season) on an interval. Readiness of the service tracks its recent health.
type Poller struct {
	provider providers.ReferenceProvider
	seasons  SeasonProvider
	store    ReferenceStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.ReferenceProvider, seasons SeasonProvider, store ReferenceStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		seasons:  seasons,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm reference data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Status returns a copy of the current poller status.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	var (
		teamList   []teams.Team
		playerList []players.Player
		season     int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := p.provider.FetchTeams(gCtx)
		if err != nil {
			return err
		}
		teamList = list
		return nil
	})
	g.Go(func() error {
		list, err := p.provider.FetchPlayers(gCtx)
		if err != nil {
			return err
		}
		playerList = list
		return nil
	})
	if p.seasons != nil {
		g.Go(func() error {
			s, err := p.seasons.FetchCurrentSeason(gCtx)
			if err != nil {
				return err
			}
			season = s
			return nil
		})
	}

	err := g.Wait()
	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(elapsed, err)
	}
	if err != nil {
		p.logError("reference refresh failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	// Teams first so the player index can join full team shapes.
	p.store.SetTeams(teamList)
	p.store.SetPlayers(playerList)
	if p.seasons != nil {
		p.store.SetCurrentSeason(season)
	}
	p.recordSuccess(start)
	p.logInfo("reference refreshed",
		slog.Int("teams", len(teamList)),
		slog.Int("players", len(playerList)),
		slog.Int(logging.FieldSeason, season),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastSuccess = at
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, args ...any) {
	logging.Error(p.logger, msg, err, args...)
}
