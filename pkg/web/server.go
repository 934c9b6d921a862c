// Package web serves the identifier panel over HTTP: a server-rendered page,
// a JSON API, a WebSocket stream, health and metrics.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/logging"
	"github.com/shamikhz/UUID-Generator/pkg/metrics"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
	"github.com/shamikhz/UUID-Generator/pkg/session"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the uuidgen web server.
type Server struct {
	addr         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	version      string
	startTime    time.Time

	gen      *generator.Generator
	sessions *session.Store
	metrics  *metrics.Registry
	openapi  *openapi3.T
	log      *slog.Logger

	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Records carry component=web.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = logging.Component(log, "web")
		}
	}
}

// WithGenerator sets the identifier generator.
func WithGenerator(gen *generator.Generator) Option {
	return func(s *Server) {
		if gen != nil {
			s.gen = gen
		}
	}
}

// WithSessionOptions configures the session store.
func WithSessionOptions(opts ...session.Option) Option {
	return func(s *Server) {
		s.sessions = session.NewStore(s.newPanel, opts...)
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(reg *metrics.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.metrics = reg
		}
	}
}

// WithTimeouts sets HTTP read and write timeouts. Zero keeps the default.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if write > 0 {
			s.writeTimeout = write
		}
	}
}

// WithVersion sets the build version reported by /health.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates a Server that will listen on addr.
func NewServer(addr string, opts ...Option) (*Server, error) {
	s := &Server{
		addr:         addr,
		readTimeout:  30 * time.Second,
		writeTimeout: 30 * time.Second,
		version:      "dev",
		gen:          generator.New(),
		metrics:      metrics.New(),
		log:          logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = session.NewStore(s.newPanel)
	}
	if err := s.metrics.TrackSessions(s.sessions.Len); err != nil {
		return nil, fmt.Errorf("register session gauge: %w", err)
	}

	doc, err := loadOpenAPI()
	if err != nil {
		return nil, err
	}
	s.openapi = doc

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = s.withMiddleware(mux)
	return s, nil
}

// batchTriggers maps panel triggers to metric labels.
var batchTriggers = map[panel.Trigger]string{
	panel.TriggerSelect:   metrics.TriggerSelect,
	panel.TriggerGenerate: metrics.TriggerGenerate,
}

// newPanel builds a panel whose batches are counted and logged.
func (s *Server) newPanel() *panel.Panel {
	return panel.New(s.gen, panel.WithObserver(func(v generator.Version, trigger panel.Trigger, batch []string) {
		s.metrics.ObserveBatch(string(v), batchTriggers[trigger], len(batch))
		s.log.Debug("batch generated", "version", v.String(), "trigger", string(trigger))
	}))
}

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Sessions returns the session store.
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.startTime = time.Now()
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Uptime returns the seconds since Serve started.
func (s *Server) Uptime() int {
	if s.startTime.IsZero() {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}
