package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/http/admin"
	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/http/public"
	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/http/system"
	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/ws"
	"github.com/hilexa-hlxa/SafeRoute/internal/config"
	"github.com/hilexa-hlxa/SafeRoute/internal/middleware"
	"github.com/hilexa-hlxa/SafeRoute/internal/routing"
	"github.com/hilexa-hlxa/SafeRoute/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, dispatcher ws.Dispatcher, graphs *routing.Holder) *Server {
	adminHandler := admin.NewHandler(logger, svc.AdminHazardService)
	publicHandler := public.NewHandler(logger, svc.PublicHazardService, svc.RouteService, svc.AlertService, svc.AdminHazardService)
	systemHandler := system.NewHandler(logger, graphs)
	wsHandler := ws.NewHandler(logger, dispatcher, svc.AlertService)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, wsHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, wsHandler *ws.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/sos", adminHandler.AdminSOSHistory)

			ar.Route("/incidents", func(ir chi.Router) {
				ir.Get("/", adminHandler.AdminHazardList)

				ir.Route("/{id}", func(rr chi.Router) {
					rr.Patch("/approve", adminHandler.AdminHazardApprove)
					rr.Patch("/reject", adminHandler.AdminHazardReject)
					rr.Delete("/", adminHandler.AdminHazardDelete)
				})
			})
		})

		// PUBLIC, read side. No identity needed to look at the map.
		api.Route("/incidents", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Get("/", publicHandler.HazardList)
			pr.Get("/nearby", publicHandler.HazardNearby)
			pr.Get("/{id}", publicHandler.HazardGet)

			// Mutations carry the gateway identity.
			pr.Group(func(wr chi.Router) {
				wr.Use(middleware.WithIdentity)

				wr.Post("/", publicHandler.HazardCreate)
				wr.Post("/{id}/vote", publicHandler.HazardVote)
				wr.Patch("/{id}/resolve", publicHandler.HazardResolve)
			})
		})

		api.Route("/routes", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/safe-route", publicHandler.SafeRoute)
		})

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.WithIdentity)
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/sos", publicHandler.SOS)
			pr.Get("/sos/history", publicHandler.SOSHistory)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	// Long-lived socket, kept out of the rate-limited API tree.
	r.Route("/ws", func(wr chi.Router) {
		wr.Use(middleware.WithIdentity)
		wr.Get("/", wsHandler.Serve)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
