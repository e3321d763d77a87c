package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rpupo63/job-tracker-backend/auth"
	"github.com/rpupo63/job-tracker-backend/config"
	"github.com/rpupo63/job-tracker-backend/database"
	"github.com/rpupo63/job-tracker-backend/export"
	"github.com/rpupo63/job-tracker-backend/metrics"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// Dependencies are the collaborators the server cannot build from config alone.
type Dependencies struct {
	Sessions *auth.Sessions
	Archiver *export.Archiver
}

func NewServer(c map[string]string, db database.Database, deps Dependencies) (Server, error) {
	if deps.Sessions == nil {
		return Server{}, fmt.Errorf("session signer is required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	opts := []func(*router){withConfig(c), withStartupTime(startupTime)}
	if deps.Archiver != nil {
		opts = append(opts, withArchiver(deps.Archiver))
	}
	router := newRouter(storesFrom(db), deps.Sessions, opts...)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 30*time.Second),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30*time.Second),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120*time.Second),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	archiver    archiver
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withArchiver(a archiver) func(*router) {
	return func(r *router) {
		r.archiver = a
	}
}

func newRouter(s stores, sessions *auth.Sessions, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(metrics.InstrumentHandler)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) == 0 {
		// go-chi/cors treats an empty list as "allow all"
		acceptedOrigins = []string{"http://localhost:3000"}
	}
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	secureCookies := config.GetBool(router.config, "SECURE_COOKIES", false)
	handlers := initializeHandlers(s, sessions, router.archiver, secureCookies)

	limiter := newRateLimiter(
		float64(config.GetInt(router.config, "AUTH_RATE_LIMIT_PER_SECOND", 5)),
		config.GetInt(router.config, "AUTH_RATE_LIMIT_BURST", 10),
	)

	setupOperationalRoutes(chiRouter, router.health(), metrics.Handler())
	setupAuthRoutes(chiRouter, handlers, limiter)
	setupFrontendRoutes(chiRouter, handlers, newAuthMiddleware(sessions))

	return chiRouter
}

func (r router) health() http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "health").Logger())
	return func(w http.ResponseWriter, _ *http.Request) {
		responder.WriteJSON(w, map[string]interface{}{
			"status":        "ok",
			"uptimeSeconds": int(time.Since(r.startupTime).Seconds()),
		})
	}
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
