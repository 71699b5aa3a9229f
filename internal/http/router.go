package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rentora/rentora/internal/http/application"
	"github.com/rentora/rentora/internal/http/auth"
	"github.com/rentora/rentora/internal/http/notification"
	"github.com/rentora/rentora/internal/http/property"
)

// RouterConfig carries the handler set plus the middleware knobs.
type RouterConfig struct {
	Properties    *property.Handler
	Applications  *application.Handler
	Notifications *notification.Handler

	JWTSecret          string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

func New(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	limiter := newRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	router.Use(limiter.handler)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	authenticate := auth.Middleware(cfg.JWTSecret)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			// browsing listings needs no token
			cfg.Properties.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(middleware.AllowContentType("application/json"))

				cfg.Properties.Routes(r)
				cfg.Applications.PropertyRoutes(r)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.AllowContentType("application/json"))

			cfg.Applications.Routes(r)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(authenticate)

			cfg.Notifications.Routes(r)
		})
	})

	return router
}
