package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appgames "mlb-stats-service/internal/app/games"
	apppostseason "mlb-stats-service/internal/app/postseason"
	appstandings "mlb-stats-service/internal/app/standings"
	appteams "mlb-stats-service/internal/app/teams"
	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/statsapi"
)

// StaleHeader marks responses rendered from an expired cache entry
// after the upstream refresh failed.
const StaleHeader = "X-Data-Stale"

// Handler wires HTTP routes to the application services.
type Handler struct {
	games      *appgames.Service
	postseason *apppostseason.Service
	standings  *appstandings.Service
	teams      *appteams.Service
	logger     *slog.Logger
}

// NewHandler constructs a Handler over the application services.
func NewHandler(games *appgames.Service, postseason *apppostseason.Service, standings *appstandings.Service, teams *appteams.Service, logger *slog.Logger) *Handler {
	return &Handler{
		games:      games,
		postseason: postseason,
		standings:  standings,
		teams:      teams,
		logger:     logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness to serve traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Schedule serves the three-day schedule window.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := appgames.ScheduleQuery{Date: r.URL.Query().Get("date")}

	var ok bool
	if query.SportID, ok = h.optionalIntQuery(w, r, "sport_id"); !ok {
		return
	}
	if query.TeamID, ok = h.optionalIntQuery(w, r, "team_id"); !ok {
		return
	}

	window, stale, err := h.games.Schedule(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, window, stale)
}

// GameByID serves the full view of one game.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	gamePk, err := strconv.Atoi(chi.URLParam(r, "gamePk"))
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "gamePk must be an integer")
		return
	}

	detail, stale, err := h.games.GameDetail(r.Context(), gamePk)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, detail, stale)
}

// Postseason serves the playoff bracket.
func (h *Handler) Postseason(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.optionalIntQuery(w, r, "season")
	if !ok {
		return
	}
	sportID, ok := h.optionalIntQuery(w, r, "sport_id")
	if !ok {
		return
	}

	bracket, stale, err := h.postseason.Bracket(r.Context(), season, sportID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, bracket, stale)
}

// WildCard serves the per-league wild-card standings.
func (h *Handler) WildCard(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.optionalIntQuery(w, r, "season")
	if !ok {
		return
	}

	wc, stale, err := h.standings.WildCard(r.Context(), season)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, wc, stale)
}

// Divisions serves the division standings tables.
func (h *Handler) Divisions(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.optionalIntQuery(w, r, "season")
	if !ok {
		return
	}
	sportID, ok := h.optionalIntQuery(w, r, "sport_id")
	if !ok {
		return
	}

	divisions, stale, err := h.standings.Divisions(r.Context(), season, sportID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, divisions, stale)
}

// Teams serves the team directory for a sport.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	sportID, ok := h.optionalIntQuery(w, r, "sport_id")
	if !ok {
		return
	}

	list, stale, err := h.teams.List(r.Context(), sportID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, list, stale)
}

// TeamByID serves one team's profile.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := h.teamIDParam(w, r)
	if !ok {
		return
	}

	profile, stale, err := h.teams.Profile(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, profile, stale)
}

// Affiliates serves a parent club's minor-league affiliates.
func (h *Handler) Affiliates(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := h.teamIDParam(w, r)
	if !ok {
		return
	}

	affiliates, stale, err := h.teams.Affiliates(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, affiliates, stale)
}

// Roster serves a team's active roster.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, ok := h.teamIDParam(w, r)
	if !ok {
		return
	}

	roster, stale, err := h.teams.Roster(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeResult(w, roster, stale)
}

func (h *Handler) teamIDParam(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "teamID must be an integer")
		return 0, false
	}
	return teamID, true
}

func (h *Handler) optionalIntQuery(w nethttp.ResponseWriter, r *nethttp.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return value, true
}

var badInputErrors = []error{
	appgames.ErrInvalidDate,
	appgames.ErrInvalidSportID,
	appgames.ErrInvalidGamePk,
	apppostseason.ErrInvalidSeason,
	apppostseason.ErrInvalidSportID,
	appstandings.ErrInvalidSeason,
	appstandings.ErrInvalidSportID,
	appteams.ErrInvalidSportID,
	appteams.ErrInvalidTeamID,
}

// writeServiceError maps application errors onto HTTP statuses:
// validation failures are 400, unknown resources 404, upstream trouble
// 502, everything else 500.
func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	for _, bad := range badInputErrors {
		if errors.Is(err, bad) {
			h.writeError(w, nethttp.StatusBadRequest, err.Error())
			return
		}
	}
	if errors.Is(err, appteams.ErrTeamNotFound) {
		h.writeError(w, nethttp.StatusNotFound, err.Error())
		return
	}

	var unavailable *statsapi.UnavailableError
	if errors.As(err, &unavailable) {
		if unavailable.StatusCode == nethttp.StatusNotFound {
			h.writeError(w, nethttp.StatusNotFound, "not found upstream")
			return
		}
		logging.Warn(logging.FromContext(r.Context(), h.logger), "upstream unavailable", "error", err)
		h.writeError(w, nethttp.StatusBadGateway, "upstream data source unavailable")
		return
	}

	logging.Error(logging.FromContext(r.Context(), h.logger), "request failed", err)
	h.writeError(w, nethttp.StatusInternalServerError, "internal error")
}

func (h *Handler) writeResult(w nethttp.ResponseWriter, payload any, stale bool) {
	if stale {
		w.Header().Set(StaleHeader, "true")
	}
	h.writeJSON(w, nethttp.StatusOK, payload)
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
