package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fortuna/pallas/internal/cache"
	"github.com/fortuna/pallas/internal/library"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server. svgCache may be nil, which
// disables render caching.
func NewServer(port string, lib *library.Library, svgCache *cache.RenderCache, log zerolog.Logger) *Server {
	handler := NewHandler(lib, svgCache, log)

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: NewRouter(handler, log),
		},
	}
}

// NewRouter wires the handler into the route table. Exposed so tests
// can drive the full routing stack with httptest.
func NewRouter(handler *Handler, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Matches
	api.HandleFunc("/matches", handler.ListMatches).Methods("GET")
	api.HandleFunc("/matches/{matchID}", handler.GetMatch).Methods("GET")

	// Teams
	api.HandleFunc("/matches/{matchID}/teams/{team}", handler.GetTeam).Methods("GET")
	api.HandleFunc("/matches/{matchID}/teams/{team}/players", handler.GetTeamPlayers).Methods("GET")
	api.HandleFunc("/matches/{matchID}/teams/{team}/heatmap", handler.GetTeamHeatmap).Methods("GET")
	api.HandleFunc("/matches/{matchID}/teams/{team}/possession-heatmap", handler.GetTeamPossessionHeatmap).Methods("GET")

	// Players
	api.HandleFunc("/matches/{matchID}/players/{player}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/matches/{matchID}/players/{player}/heatmap", handler.GetPlayerHeatmap).Methods("GET")
	api.HandleFunc("/matches/{matchID}/players/{player}/possession-heatmap", handler.GetPlayerPossessionHeatmap).Methods("GET")

	return router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
