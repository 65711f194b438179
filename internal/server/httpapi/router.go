// Package httpapi exposes the dev backend over HTTP: a flat REST profile
// store plus an identity endpoint emulating a hosted auth provider.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/ykarpenko/sessionkeeper/internal/logging"
	"github.com/ykarpenko/sessionkeeper/internal/server/accounts"
	"github.com/ykarpenko/sessionkeeper/internal/server/config"
	"github.com/ykarpenko/sessionkeeper/internal/server/profiles"
)

const (
	signUpRate  = 0.5
	signUpBurst = 5
)

// Deps carries everything the handlers need.
type Deps struct {
	Logger   logging.Logger
	Profiles *profiles.Service
	Accounts *accounts.Service
	Config   *config.Config
}

// NewRouter builds the routing table: CORS, request logging, recovery, and
// an IP rate limit on account creation.
func NewRouter(deps *Deps) http.Handler {
	signUpLimiter := NewIPRateLimiter(rate.Limit(signUpRate), signUpBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{"*"}
	if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/users", func(users chi.Router) {
		users.Post("/", handleCreateProfile(deps))
		users.Get("/", handleListProfiles(deps))
		users.Get("/{id}", handleGetProfile(deps))
	})

	rateLimitedSignUp := signUpLimiter.Middleware(handleSignUp(deps))
	r.Post("/v1/accounts:signUp", rateLimitedSignUp.ServeHTTP)
	r.Post("/v1/accounts:signInWithPassword", handleSignIn(deps))

	return r
}

// requestLogger logs method, path, status and latency for every request.
func requestLogger(log logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)

			log.Info(r.Context(), "request completed",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"latency", time.Since(start),
			)
		}

		return http.HandlerFunc(fn)
	}
}
