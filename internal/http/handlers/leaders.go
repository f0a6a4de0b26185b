package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
)

// Leaders serves the per-category stat leaderboards for a season.
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	season, ok := h.seasonParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid season", h.logger)
		return
	}

	leaders, err := h.leaders.Leaders(r.Context(), season)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		logging.Warn(logger, "leaders fetch failed", slog.Int(logging.FieldSeason, season), slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "leaders unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, leaders, h.logger)
}
