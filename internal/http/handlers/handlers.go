package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appleaders "github.com/jmaliksi/blaseball-reference.com/internal/app/leaders"
	appplayers "github.com/jmaliksi/blaseball-reference.com/internal/app/players"
	appsearch "github.com/jmaliksi/blaseball-reference.com/internal/app/search"
	appteams "github.com/jmaliksi/blaseball-reference.com/internal/app/teams"
	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/poller"
	"github.com/jmaliksi/blaseball-reference.com/internal/snapshots"
)

// GamesFetcher fetches a season's game list from the stats database.
type GamesFetcher interface {
	FetchSeasonGames(ctx context.Context, season int) (domaingames.SeasonGames, error)
}

// SeasonSource reports the latest known season from the warmed reference data.
type SeasonSource interface {
	CurrentSeason() int
}

// Handler wires the page routes to the application services.
type Handler struct {
	players  *appplayers.Service
	teams    *appteams.Service
	leaders  *appleaders.Service
	search   *appsearch.Service
	games    GamesFetcher
	seasons  SeasonSource
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() poller.Status
	fallback fallbackFunc
}

type fallbackFunc func(kind string)

// Deps collects the handler's collaborators.
type Deps struct {
	Players  *appplayers.Service
	Teams    *appteams.Service
	Leaders  *appleaders.Service
	Search   *appsearch.Service
	Games    GamesFetcher
	Seasons  SeasonSource
	Snaps    snapshots.Store
	Logger   *slog.Logger
	StatusFn func() poller.Status
	// OnSnapshotFallback is invoked when a page is served from the snapshot
	// tier instead of live data. Optional.
	OnSnapshotFallback func(kind string)
}

// NewHandler constructs a Handler.
func NewHandler(deps Deps) *Handler {
	fallback := deps.OnSnapshotFallback
	if fallback == nil {
		fallback = func(string) {}
	}
	return &Handler{
		players:  deps.Players,
		teams:    deps.Teams,
		leaders:  deps.Leaders,
		search:   deps.Search,
		games:    deps.Games,
		seasons:  deps.Seasons,
		snaps:    deps.Snaps,
		logger:   deps.Logger,
		statusFn: deps.StatusFn,
		fallback: fallback,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic, tracking the reference poller's
// recent health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// seasonParam resolves the ?season query param, defaulting to the latest
// known season when absent. The second return is false when the param is
// present but not a positive number.
func (h *Handler) seasonParam(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return h.currentSeason(), true
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season < 1 {
		return 0, false
	}
	return season, true
}

func (h *Handler) currentSeason() int {
	if h.seasons == nil {
		return 1
	}
	if season := h.seasons.CurrentSeason(); season > 0 {
		return season
	}
	return 1
}
