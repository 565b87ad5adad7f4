// Package server assembles the HTTP surface: router, middleware and the
// process-wide Prometheus registry.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/graph"
	"github.com/fakhrymubarak/weather-activity-api/internal/handler"
	"github.com/fakhrymubarak/weather-activity-api/internal/metrics"
	custommiddleware "github.com/fakhrymubarak/weather-activity-api/internal/middleware"
	"github.com/fakhrymubarak/weather-activity-api/internal/repository"
	"github.com/fakhrymubarak/weather-activity-api/internal/service"
)

type Server struct {
	httpServer *http.Server
	registry   *prometheus.Registry
}

// NewRouter mounts the GraphQL, health and metrics endpoints behind the shared middleware chain.
func NewRouter(resolver *graph.Resolver, gatherer prometheus.Gatherer) (http.Handler, error) {
	gql, err := handler.NewGraphQLHandler(resolver)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.GetServerTimeout("request_timeout", 20*time.Second)))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/healthz", handler.HandleHealth)
	r.Method(http.MethodGet, "/graphql", gql)
	r.Method(http.MethodPost, "/graphql", gql)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r, nil
}

// New wires repositories, services and the router against a fresh registry.
func New() (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	upstream, err := metrics.NewUpstreamMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register upstream metrics: %w", err)
	}

	forecasts := service.NewForecastService(repository.NewForecastRepository(upstream))
	resolver := graph.NewResolver(
		service.NewCityService(repository.NewCityRepository(upstream)),
		forecasts,
		service.NewActivityRankingService(forecasts),
	)

	router, err := NewRouter(resolver, registry)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("", config.GetServerPort()),
			Handler:           router,
			ReadHeaderTimeout: config.GetServerTimeout("read_header_timeout", 15*time.Second),
			ReadTimeout:       config.GetServerTimeout("read_timeout", 15*time.Second),
			WriteTimeout:      config.GetServerTimeout("write_timeout", 30*time.Second),
			IdleTimeout:       config.GetServerTimeout("idle_timeout", 60*time.Second),
		},
		registry: registry,
	}, nil
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests within server.shutdown_timeout.
func (s *Server) Run(ctx context.Context) error {
	log := config.GetLogger()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Infow("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetServerTimeout("shutdown_timeout", 10*time.Second))
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	log.Infow("HTTP server stopped")
	return nil
}

func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}
