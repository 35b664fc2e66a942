// Package httpserver wires the readmegen API endpoints onto an http.Server
// with graceful startup and shutdown.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/config"
	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/server/handlers"
	smw "git.home.luguber.info/inful/readmegen/internal/server/middleware"
)

const (
	readHeaderTimeout = 10 * time.Second
	// Generation requests clone and call a hosted model; write timeout has
	// to cover the whole pipeline.
	writeTimeout = 5 * time.Minute
)

// Options carries optional server collaborators.
type Options struct {
	// MetricsHandler, when set, is mounted at /metrics.
	MetricsHandler http.Handler
}

// Server manages the readmegen HTTP API.
type Server struct {
	cfg          *config.Config
	opts         Options
	httpServer   *http.Server
	errorAdapter *rerrors.HTTPErrorAdapter

	generateHandlers   *handlers.GenerateHandlers
	monitoringHandlers *handlers.MonitoringHandlers

	mchain func(http.Handler) http.Handler
}

// New constructs a new HTTP server wiring instance.
func New(cfg *config.Config, svc handlers.ReadmeGenerator, opts Options) *Server {
	s := &Server{
		cfg:          cfg,
		opts:         opts,
		errorAdapter: rerrors.NewHTTPErrorAdapter(slog.Default()),
	}

	s.generateHandlers = handlers.NewGenerateHandlers(svc)
	s.monitoringHandlers = handlers.NewMonitoringHandlers(cfg)
	s.mchain = smw.Chain(slog.Default(), s.errorAdapter)

	return s
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.monitoringHandlers.HandleRoot)
	mux.HandleFunc("/health", s.monitoringHandlers.HandleHealth)
	mux.HandleFunc("/models", s.monitoringHandlers.HandleModelInfo)
	mux.HandleFunc("/generate-readme", s.generateHandlers.HandleGenerate)
	if s.cfg.Metrics.Enabled && s.opts.MetricsHandler != nil {
		mux.Handle("/metrics", s.opts.MetricsHandler)
	}
	return s.mchain(mux)
}

// Start binds the listen port and begins serving. Binding happens before the
// serve goroutine starts so port conflicts fail fast.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("http startup failed: %w", err)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("HTTP server started", slog.String("addr", addr))
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	slog.Info("HTTP server stopped")
	return nil
}

// Handler exposes the full middleware-wrapped mux for tests.
func (s *Server) Handler() http.Handler {
	return s.routes()
}
