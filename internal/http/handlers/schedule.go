package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appschedule "github.com/jmaliksi/blaseball-reference.com/internal/app/schedule"
	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
)

var errSnapshotsDisabled = errors.New("snapshot store not configured")

// TeamSchedule serves a team's bucketed schedule for a season.
func (h *Handler) TeamSchedule(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "teamSlug")

	team, ok := h.teams.BySlug(slug)
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}

	season, ok := h.seasonParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid season", h.logger)
		return
	}

	h.serveSchedule(w, r, season, team.ID)
}

// SeasonSchedule serves the league-wide bucketed schedule for a season.
func (h *Handler) SeasonSchedule(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "season")
	season, err := strconv.Atoi(raw)
	if err != nil || season < 1 {
		writeError(w, r, http.StatusBadRequest, "invalid season", h.logger)
		return
	}

	h.serveSchedule(w, r, season, "")
}

// serveSchedule fetches the season's games live, falling back to the
// filesystem snapshot tier before failing with 502.
func (h *Handler) serveSchedule(w http.ResponseWriter, r *http.Request, season int, teamID string) {
	logger := loggerFromContext(r, h.logger)

	payload, err := h.games.FetchSeasonGames(r.Context(), season)
	if err != nil {
		logging.Warn(logger, "season games fetch failed", slog.Int(logging.FieldSeason, season), slog.Any("err", err))
		snap, snapErr := h.loadScheduleSnapshot(season)
		if snapErr != nil {
			logging.Warn(logger, "schedule snapshot unavailable", slog.Int(logging.FieldSeason, season), slog.Any("err", snapErr))
			writeError(w, r, http.StatusBadGateway, "schedule unavailable", h.logger)
			return
		}
		payload = snap
		h.fallback("schedule")
		logging.Info(logger, "served schedule snapshot",
			slog.Int(logging.FieldSeason, season),
			slog.Int(logging.FieldCount, len(snap.Games)),
		)
	}

	writeJSON(w, http.StatusOK, appschedule.Build(season, teamID, payload.Games), h.logger)
}

func (h *Handler) loadScheduleSnapshot(season int) (domaingames.SeasonGames, error) {
	if h.snaps == nil {
		return domaingames.SeasonGames{}, errSnapshotsDisabled
	}
	return h.snaps.LoadSeasonGames(season)
}
