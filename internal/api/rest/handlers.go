package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fortuna/pallas/internal/cache"
	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/internal/pitch"
	"github.com/fortuna/pallas/internal/service"
	"github.com/fortuna/pallas/internal/tracab"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	matches  *service.MatchService
	teams    *service.TeamService
	players  *service.PlayerService
	heatmaps *service.HeatmapService
	renderer *pitch.Renderer
	svgCache *cache.RenderCache
	log      zerolog.Logger
}

// NewHandler creates a new handler. svgCache may be nil.
func NewHandler(lib *library.Library, svgCache *cache.RenderCache, log zerolog.Logger) *Handler {
	return &Handler{
		matches:  service.NewMatchService(lib),
		teams:    service.NewTeamService(lib),
		players:  service.NewPlayerService(lib),
		heatmaps: service.NewHeatmapService(lib),
		renderer: pitch.NewRenderer(),
		svgCache: svgCache,
		log:      log,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pallas",
		"version": "1.0.0",
	})
}

// ListMatches returns metadata for every loaded match
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches := h.matches.List()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetMatch returns one match's metadata
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	info, err := h.matches.Get(mux.Vars(r)["matchID"])
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// GetTeam returns a team summary; the selector is a role tag or name
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	team, err := h.teams.Get(vars["matchID"], vars["team"])
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// GetTeamPlayers returns a team's roster in document order
func (h *Handler) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	players, err := h.teams.Players(vars["matchID"], vars["team"])
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayer returns a player profile; the selector is an id or name
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	player, err := h.players.Get(vars["matchID"], vars["player"])
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

// GetTeamHeatmap returns one situational team heatmap.
// Query: kind=overall|defence|midfield|attack, format=json|svg
func (h *Handler) GetTeamHeatmap(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := queryDefault(r, "kind", string(tracab.TeamOverall))

	h.respondView(w, r, func() (*pitch.View, error) {
		return h.heatmaps.Team(vars["matchID"], vars["team"], tracab.TeamKind(kind))
	})
}

// GetTeamPossessionHeatmap returns a possession-qualified team heatmap.
// Query: side=in|out, span=overall|first-half|second-half, format=json|svg
func (h *Handler) GetTeamPossessionHeatmap(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	side := queryDefault(r, "side", string(tracab.SideIn))
	span := queryDefault(r, "span", string(tracab.SpanOverall))

	h.respondView(w, r, func() (*pitch.View, error) {
		return h.heatmaps.TeamPossession(vars["matchID"], vars["team"], tracab.Side(side), tracab.Span(span))
	})
}

// GetPlayerHeatmap returns a player's whole-game heatmap.
// Query: format=json|svg
func (h *Handler) GetPlayerHeatmap(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	h.respondView(w, r, func() (*pitch.View, error) {
		return h.heatmaps.Player(vars["matchID"], vars["player"])
	})
}

// GetPlayerPossessionHeatmap returns a possession-qualified player heatmap.
// Query: side=in|out, span=overall|first-half|second-half, format=json|svg
func (h *Handler) GetPlayerPossessionHeatmap(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	side := queryDefault(r, "side", string(tracab.SideIn))
	span := queryDefault(r, "span", string(tracab.SpanOverall))

	h.respondView(w, r, func() (*pitch.View, error) {
		return h.heatmaps.PlayerPossession(vars["matchID"], vars["player"], tracab.Side(side), tracab.Span(span))
	})
}

// respondView runs a view builder and writes the result in the
// requested format. SVG renderings go through the render cache, keyed
// by the full request path and query.
func (h *Handler) respondView(w http.ResponseWriter, r *http.Request, build func() (*pitch.View, error)) {
	format := queryDefault(r, "format", "json")
	if format != "json" && format != "svg" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format %q (use json or svg)", format), nil)
		return
	}

	if format == "svg" {
		key := cacheKey(r)
		if svg, ok := h.svgCache.GetSVG(r.Context(), key); ok {
			respondSVG(w, svg)
			return
		}
		view, err := build()
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		svg, err := h.renderer.RenderSVG(*view)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to render heatmap", err)
			return
		}
		h.svgCache.SetSVG(r.Context(), key, svg)
		respondSVG(w, svg)
		return
	}

	view, err := build()
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func queryDefault(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func cacheKey(r *http.Request) string {
	key := r.URL.Path
	if q := r.URL.Query().Encode(); q != "" {
		key += "?" + q
	}
	return key
}

// respondServiceError maps the accessor error taxonomy onto HTTP
// statuses: bad selectors are the client's fault, missing entities are
// 404s, and malformed documents are a server-side data problem.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var invalidKind *tracab.InvalidKindError
	var notFound *tracab.NotFoundError

	switch {
	case errors.As(err, &invalidKind):
		msg := fmt.Sprintf("Invalid value %q (valid: %s)", invalidKind.Kind, strings.Join(invalidKind.Valid, ", "))
		respondError(w, http.StatusBadRequest, msg, nil)
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, fmt.Sprintf("No such %s", notFound.Entity), err)
	default:
		h.log.Error().Err(err).Msg("document access failed")
		respondError(w, http.StatusInternalServerError, "Document data error", err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
