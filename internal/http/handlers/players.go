package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
	"github.com/jmaliksi/blaseball-reference.com/internal/tables"
)

type playerIndexResponse struct {
	Groups []domainplayers.IndexGroup `json:"groups"`
}

type playerDetailResponse struct {
	Player   domainplayers.Player `json:"player"`
	Batting  tables.Table         `json:"batting"`
	Pitching tables.Table         `json:"pitching"`
}

// PlayerIndex serves the player index grouped by last-name initial.
func (h *Handler) PlayerIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, playerIndexResponse{Groups: h.players.Index()}, h.logger)
}

// PlayerBySlug serves a player's detail page: the player record plus batting
// and pitching stat tables with career totals. ?format=csv exports one table
// (group=batting by default).
func (h *Handler) PlayerBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "playerSlug")
	logger := loggerFromContext(r, h.logger)

	player, ok := h.players.BySlug(slug)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		h.playerCSV(w, r, player)
		return
	}

	batting, pitching, err := h.players.AllSplits(r.Context(), player.ID)
	if err != nil && !errors.Is(err, providers.ErrNotFound) {
		logging.Warn(logger, "player splits fetch failed", slog.String(logging.FieldSlug, slug), slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "stats unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, playerDetailResponse{
		Player:   player,
		Batting:  tables.BattingTable(batting),
		Pitching: tables.PitchingTable(pitching),
	}, h.logger)
}

func (h *Handler) playerCSV(w http.ResponseWriter, r *http.Request, player domainplayers.Player) {
	logger := loggerFromContext(r, h.logger)

	group := stats.Group(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("group"))))
	if group == "" {
		group = stats.GroupBatting
	}
	if !group.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown stat group", h.logger)
		return
	}

	splits, err := h.players.Splits(r.Context(), player.ID, group)
	if err != nil && !errors.Is(err, providers.ErrNotFound) {
		logging.Warn(logger, "player splits fetch failed", slog.String(logging.FieldSlug, player.Slug), slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "stats unavailable", h.logger)
		return
	}

	table := tables.BattingTable(splits)
	if group == stats.GroupPitching {
		table = tables.PitchingTable(splits)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+player.Slug+`-`+string(group)+`.csv"`)
	if err := tables.WriteCSV(w, table); err != nil {
		logging.Warn(logger, "csv export failed", slog.String(logging.FieldSlug, player.Slug), slog.Any("err", err))
	}
}
