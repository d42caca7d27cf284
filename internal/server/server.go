// Package server is the documentation version gateway: it serves a built
// site from disk, exposes the version manifest, and injects the version
// selector and staleness banner into HTML pages on the way out.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/zentinel/docver/internal/chrome"
	"github.com/zentinel/docver/internal/manifest"
)

// Config holds gateway configuration.
type Config struct {
	Port     int
	BasePath string // URL prefix the site is served under, "" for root
	SiteDir  string // built site directory
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the documentation site.
type Server struct {
	cfg        Config
	source     manifest.Source
	chrome     *chrome.Controller
	log        *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a gateway serving cfg.SiteDir, loading the manifest through
// source and decorating pages with ctrl.
func New(cfg Config, source manifest.Source, ctrl *chrome.Controller, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		source: source,
		chrome: ctrl,
		log:    log,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get(s.cfg.BasePath+"/"+manifest.FileName, s.handleManifest)
	r.Get("/-/switch", s.handleSwitch)

	// Everything else is the static site.
	r.NotFound(s.handlePage)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("docver gateway listening",
		zap.String("addr", addr),
		zap.String("site_dir", s.cfg.SiteDir),
		zap.String("base_path", s.cfg.BasePath))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the gateway.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
