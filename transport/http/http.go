package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"todoapp/config"
	"todoapp/shared/constant"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/response"
	"todoapp/transport/http/router"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware

	state  atomic.Int32
	mux    *chi.Mux
	server *http.Server
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
	}
}

// State reports where the server is in its lifecycle.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Handler returns the fully wired router without binding a listener.
func (h *HTTP) Handler() http.Handler {
	if h.mux == nil {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	}

	return h.mux
}

// Serve blocks until SIGINT or SIGTERM has been handled and in-flight requests have drained.
func (h *HTTP) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.ListenAndServe(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ListenAndServe runs the server until ctx is done, then shuts down gracefully.
func (h *HTTP) ListenAndServe(ctx context.Context) error {
	address := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return h.serve(ctx, listener)
}

func (h *HTTP) serve(ctx context.Context, listener net.Listener) error {
	h.server = &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("address", listener.Addr().String()).Msg("Starting up HTTP server.")

		if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.shutdown()

	return <-errCh
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.Middleware.CORS())
	h.mux.Use(h.Middleware.Tracing)

	h.mux.Get("/health", h.health)

	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) health(writer http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, constant.ResponseMessageHealthy)
}

func (h *HTTP) shutdown() {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
	} else {
		log.Info().Msg("Received SIGTERM.")
	}

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP server, closing")

		_ = h.server.Close()
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
