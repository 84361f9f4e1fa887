// Package httpserver exposes renumbering over HTTP.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin          *gin.Engine
	l            *zap.Logger
	port         int
	mode         string
	maxBodyBytes int64
	limiter      *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Port         int
	Mode         string
	MaxBodyBytes int64

	// RateLimitPerMin is the number of requests each client may make per
	// minute. Zero disables rate limiting.
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger *zap.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:            logger,
		port:         cfg.Port,
		mode:         cfg.Mode,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if err := srv.validate(); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMin < 0 {
		return nil, errors.New("rate limit must not be negative")
	}
	if cfg.RateLimitPerMin > 0 {
		srv.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	gin.SetMode(cfg.Mode)
	srv.gin = gin.New()
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	switch srv.mode {
	case "":
		return errors.New("mode is required")
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown mode %q", srv.mode)
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.maxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}
	return nil
}

// Handler returns the HTTP handler serving all routes.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run listens on the configured port and serves until ctx is cancelled.
func (srv *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", srv.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", srv.port, err)
	}
	return srv.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- hs.Serve(ln)
	}()
	srv.l.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	srv.l.Info("HTTP server stopped")
	return nil
}
