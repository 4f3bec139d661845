package router

import (
	"net/http"

	"dine24/internal/auth"
	"dine24/internal/config"
	"dine24/internal/handler"
	"dine24/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router wires up.
type Handlers struct {
	Auth        *handler.AuthHandler
	Reservation *handler.ReservationHandler
	Menu        *handler.MenuHandler
	Chat        *handler.ChatHandler
	Email       *handler.EmailHandler
	Analytics   *handler.AnalyticsHandler
}

// New creates the HTTP router with all routes and middleware
// configured. The three admin endpoints are wrapped with the
// bearer-token gate; login and chat additionally sit behind the
// per-IP rate limiter.
func New(h Handlers, issuer *auth.Issuer, rateLimitCfg config.RateLimitConfig, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	protected := middleware.BearerAuth(issuer, logger)

	throttled := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if rateLimitCfg.Enabled {
		rl := middleware.NewRateLimiter(rateLimitCfg.RPS, rateLimitCfg.Burst, logger)
		throttled = rl.Limit
	}

	mux.HandleFunc("/api/health", handler.Health)
	mux.HandleFunc("/api/auth/login", throttled(h.Auth.Login))

	// reservations: creation is public, listing is admin-only
	mux.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.Reservation.Create(w, r)
		case http.MethodGet:
			protected(h.Reservation.List)(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// menu: reading is public, adding is admin-only
	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Menu.List(w, r)
		case http.MethodPost:
			protected(h.Menu.Add)(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/ai-chat", throttled(h.Chat.Chat))
	mux.HandleFunc("/api/send-email", h.Email.Send)
	mux.HandleFunc("/api/analytics", protected(h.Analytics.Summary))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(mux)

	var root http.Handler = corsHandler
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
