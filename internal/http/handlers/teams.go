package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
	"github.com/jmaliksi/blaseball-reference.com/internal/tables"
)

type teamListResponse struct {
	Teams []domainteams.Team `json:"teams"`
}

type teamDetailResponse struct {
	Team    domainteams.Team    `json:"team"`
	Season  int                 `json:"season"`
	Players []stats.PlayerSplit `json:"players"`
}

// Teams serves the team list ordered by full name.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, teamListResponse{Teams: h.teams.Teams()}, h.logger)
}

// TeamBySlug serves a team's detail page: the team record plus one stat line
// per roster member for the requested season (?season=N, latest by default).
// ?format=csv exports the roster table (group=batting by default).
func (h *Handler) TeamBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "teamSlug")
	logger := loggerFromContext(r, h.logger)

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

	lines, err := h.teams.PlayerStats(r.Context(), team.ID, season)
	if err != nil && !errors.Is(err, providers.ErrNotFound) {
		logging.Warn(logger, "team player stats fetch failed",
			slog.String(logging.FieldSlug, slug),
			slog.Int(logging.FieldSeason, season),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "stats unavailable", h.logger)
		return
	}
	if lines == nil {
		lines = []stats.PlayerSplit{}
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		h.teamCSV(w, r, team, lines)
		return
	}

	writeJSON(w, http.StatusOK, teamDetailResponse{
		Team:    team,
		Season:  season,
		Players: lines,
	}, h.logger)
}

func (h *Handler) teamCSV(w http.ResponseWriter, r *http.Request, team domainteams.Team, lines []stats.PlayerSplit) {
	logger := loggerFromContext(r, h.logger)

	group := stats.Group(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("group"))))
	if group == "" {
		group = stats.GroupBatting
	}
	if !group.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown stat group", h.logger)
		return
	}

	table := tables.RosterBattingTable(lines)
	if group == stats.GroupPitching {
		table = tables.RosterPitchingTable(lines)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+team.Slug+`-`+string(group)+`.csv"`)
	if err := tables.WriteCSV(w, table); err != nil {
		logging.Warn(logger, "csv export failed", slog.String(logging.FieldSlug, team.Slug), slog.Any("err", err))
	}
}

// Standings serves the season's standings with win percentage and games back.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	season, ok := h.seasonParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid season", h.logger)
		return
	}

	standings, err := h.teams.Standings(r.Context(), season)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		logging.Warn(logger, "standings fetch failed", slog.Int(logging.FieldSeason, season), slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "standings unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, standings, h.logger)
}
