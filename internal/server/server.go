// Package server exposes the booking service over HTTP with a JSON API,
// a Server-Sent Events stream and generated API docs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

// Config holds the HTTP server dependencies
type Config struct {
	Addr           string
	Logger         *slog.Logger
	BookingService booking.Service
	Broker         *Broker
	// Mount attaches extra routes such as the health endpoint
	Mount func(r chi.Router)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return apperrors.InvalidArgument("config is required")
	}

	vb := apperrors.NewValidationBuilder()
	if c.Addr == "" {
		vb.RequiredField("Addr")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}
	if c.BookingService == nil {
		vb.RequiredField("BookingService")
	}
	if c.Broker == nil {
		vb.RequiredField("Broker")
	}
	return vb.Build()
}

type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "invalid config")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newStructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)

	addRoutes(r, cfg.Logger, cfg.BookingService, cfg.Broker)
	if cfg.Mount != nil {
		cfg.Mount(r)
	}

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: cfg.Logger,
	}, nil
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until Shutdown. Requests inherit ctx so open event streams
// end when it is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func newStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
