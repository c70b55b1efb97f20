package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"roomstay/config"
	"roomstay/infras/postgres"
	"roomstay/shared/constant"
	"roomstay/transport/http/middleware"
	"roomstay/transport/http/response"
	"roomstay/transport/http/router"
	"syscall"
	"time"

	_ "roomstay/docs"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	DB         *postgres.Connection
	Middleware middleware.AppMiddleware
	Router     router.Router
	State      ServerState
	mux        *chi.Mux
}

func New(cfg *config.Config, db *postgres.Connection, appMiddleware middleware.AppMiddleware, r router.Router) *HTTP {
	return &HTTP{
		Config:     cfg,
		DB:         db,
		Middleware: appMiddleware,
		Router:     r,
	}
}

// Serve starts the HTTP server and blocks until it shuts down.
func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:    net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler: h.mux,
	}

	go h.respondToSigterm(server)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the configured mux be used directly as a handler, for
// serverless runtimes that never call Serve.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.setup()
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.Middleware.RequestID)
	h.mux.Use(h.Middleware.Logging)
	h.mux.Use(h.Middleware.Tracing)
	h.mux.Use(h.Middleware.CORS())
	h.mux.Use(h.Middleware.RateLimit())

	h.mux.Get("/health", h.HealthCheck)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.Router.SetupRoutes(h.mux)

	h.State = ServerStateReady
}

// HealthCheck reports whether the server is ready to accept traffic.
// @Summary Health check
// @Description Check that the server and its database connections are healthy.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Server healthy"
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	if err := h.DB.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("read database unreachable")
		response.WithUnhealthy(w)

		return
	}

	if err := h.DB.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("write database unreachable")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) respondToSigterm(server *http.Server) {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		_ = server.Close()

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed, closing immediately.")

		_ = server.Close()
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
