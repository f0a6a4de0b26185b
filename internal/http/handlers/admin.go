package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmaliksi/blaseball-reference.com/internal/http/requestutil"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/snapshots"
)

// AdminHandler exposes admin-only endpoints (snapshot refresh).
type AdminHandler struct {
	writer   *snapshots.Writer
	provider GamesFetcher
	seasons  SeasonSource
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider GamesFetcher, seasons SeasonSource, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		seasons:  seasons,
		token:    token,
		logger:   logger,
	}
}

// RefreshSnapshots writes a schedule snapshot for the requested season
// (defaults to the latest known season). Guarded by ADMIN_TOKEN; returns 401
// when missing or invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	season := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("season")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			logging.Warn(logger, "admin snapshot invalid season", slog.String("raw", raw))
			writeError(w, r, http.StatusBadRequest, "invalid season", logger)
			return
		}
		season = parsed
	} else if h.seasons != nil {
		season = h.seasons.CurrentSeason()
	}
	if season < 1 {
		writeError(w, r, http.StatusBadRequest, "season unknown", logger)
		return
	}

	payload, err := h.provider.FetchSeasonGames(r.Context(), season)
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed",
			slog.Int(logging.FieldSeason, season),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch games", logger)
		return
	}
	if len(payload.Games) == 0 {
		logging.Warn(logger, "admin snapshot no games", slog.Int(logging.FieldSeason, season))
		writeError(w, r, http.StatusBadRequest, "no games to snapshot", logger)
		return
	}

	if err := h.writer.WriteScheduleSnapshot(season, payload); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.Int(logging.FieldSeason, season),
			slog.Int(logging.FieldCount, len(payload.Games)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"season": season,
		"games":  len(payload.Games),
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(payload.Games)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
