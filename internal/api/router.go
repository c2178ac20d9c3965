package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SiddheshD91/PPL2026/internal/api/handler"
	"github.com/SiddheshD91/PPL2026/internal/api/middleware"
	"github.com/SiddheshD91/PPL2026/internal/services/auth"
	"github.com/SiddheshD91/PPL2026/internal/services/category"
	"github.com/SiddheshD91/PPL2026/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	PlayerService   *player.Service
	CategoryService *category.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	categoryHandler := handler.NewCategoryHandler(cfg.CategoryService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// The registration form is public; everything else about players
	// is for logged-in admins
	api.HandleFunc("/players", playerHandler.Register).Methods(http.MethodPost)

	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Update).Methods(http.MethodPatch)

	// Category routes (all require auth)
	categories := api.PathPrefix("/categories").Subrouter()
	categories.Use(authMiddleware)
	categories.HandleFunc("", categoryHandler.Create).Methods(http.MethodPost)
	categories.HandleFunc("", categoryHandler.List).Methods(http.MethodGet)
	categories.HandleFunc("/{id}", categoryHandler.Get).Methods(http.MethodGet)
	categories.HandleFunc("/{id}", categoryHandler.Delete).Methods(http.MethodDelete)
	categories.HandleFunc("/{id}/players", categoryHandler.Members).Methods(http.MethodGet)
	categories.HandleFunc("/{id}/players", categoryHandler.AddPlayer).Methods(http.MethodPost)
	categories.HandleFunc("/{id}/players/{player_id}", categoryHandler.RemovePlayer).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
