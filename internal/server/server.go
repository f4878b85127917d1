package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mattjh/shoplist/internal/account"
	"github.com/mattjh/shoplist/internal/handler"
	"github.com/mattjh/shoplist/internal/liststore"
	"github.com/mattjh/shoplist/internal/middleware"
	"github.com/mattjh/shoplist/internal/settings"
	ws "github.com/mattjh/shoplist/internal/websocket"
)

type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	listH        *handler.ListHandler
	itemH        *handler.ItemHandler
	categoryH    *handler.CategoryHandler
	settingsH    *handler.SettingsHandler
	authH        *handler.AuthHandler
	sessionStore *account.SessionStore
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, store *liststore.Store, prefs *settings.Service, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := account.NewUserStore(db)
	sessionStore := account.NewSessionStore(db)

	return &Server{
		db:           db,
		hub:          hub,
		listH:        handler.NewListHandler(store, hub, logger.With("component", "list")),
		itemH:        handler.NewItemHandler(store, hub, logger.With("component", "item")),
		categoryH:    handler.NewCategoryHandler(),
		settingsH:    handler.NewSettingsHandler(prefs),
		authH:        handler.NewAuthHandler(userStore, sessionStore, logger.With("component", "auth")),
		sessionStore: sessionStore,
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *account.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// List API routes
	mux.HandleFunc("GET /api/lists", s.listH.List)
	mux.HandleFunc("POST /api/lists", s.listH.Create)
	mux.HandleFunc("GET /api/lists/{id}", s.listH.Get)
	mux.HandleFunc("PUT /api/lists/{id}", s.listH.UpdateTitle)
	mux.HandleFunc("DELETE /api/lists/{id}", s.listH.Delete)
	mux.HandleFunc("POST /api/lists/{id}/favorite", s.listH.ToggleFavorite)

	// Item API routes
	mux.HandleFunc("POST /api/lists/{list_id}/items", s.itemH.Create)
	mux.HandleFunc("PUT /api/lists/{list_id}/items/{id}", s.itemH.Update)
	mux.HandleFunc("DELETE /api/lists/{list_id}/items/{id}", s.itemH.Delete)
	mux.HandleFunc("POST /api/lists/{list_id}/items/{id}/check", s.itemH.ToggleChecked)

	// Category routes
	mux.HandleFunc("GET /api/categories", s.categoryH.List)
	mux.HandleFunc("GET /api/categories/suggest", s.categoryH.Suggest)

	// Preference routes
	mux.HandleFunc("GET /api/settings/language", s.settingsH.GetLanguage)
	mux.HandleFunc("PUT /api/settings/language", s.settingsH.UpdateLanguage)
	mux.HandleFunc("GET /api/settings/theme", s.settingsH.GetTheme)
	mux.HandleFunc("PUT /api/settings/theme", s.settingsH.UpdateTheme)

	// Auth routes — the only protected surface; list data stays local
	mux.HandleFunc("POST /api/auth/signup", s.rateLimitedHandler(s.authH.Signup))
	mux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))

	requireAuth := middleware.RequireAuth(s.sessionStore)
	mux.Handle("POST /api/auth/logout", requireAuth(http.HandlerFunc(s.authH.Logout)))
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(s.authH.Me)))

	// WebSocket change feed
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
