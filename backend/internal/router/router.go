package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forumapi/backend/internal/setup"
	"github.com/itchan-dev/forumapi/shared/api"
	mw "github.com/itchan-dev/forumapi/shared/middleware"
	"github.com/itchan-dev/forumapi/shared/middleware/metrics"
	"github.com/itchan-dev/forumapi/shared/utils"
)

// New creates the chi router with all routes.
// Rate limiters attached with Use limit requests for all routes of that group combined.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureHeaders))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", h.Register)

	// Login: per IP limit from config
	r.With(mw.RateLimit(deps.LoginLimiter, mw.GetIP)).Post("/authentications", h.Login)
	r.Put("/authentications", h.Refresh)
	r.Delete("/authentications", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())
		r.Use(mw.RateLimit(deps.ThreadLimiter, mw.GetUserIDFromContext))

		r.Post("/threads", h.CreateThread)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, api.Envelope{Status: api.StatusFail, Message: "route not found"})
	})

	return r
}
