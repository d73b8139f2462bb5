// Package server exposes content generation and saved content over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/birmacher/content-gen/logger"
	"github.com/birmacher/content-gen/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UserHeader carries the caller's user identifier. Authentication happens upstream.
const UserHeader = "X-User-ID"

// Generator is implemented by generate.Client
type Generator interface {
	GenerateSinglePost(ctx context.Context, topic string) (string, error)
	GenerateThread(ctx context.Context, topic string, length int) ([]string, error)
	GenerateBio(ctx context.Context, intro, niche, role string) (string, error)
}

// Server wraps an HTTP server around a chi router
type Server struct {
	server    *http.Server
	router    *chi.Mux
	generator Generator
	store     store.Store
}

// New creates a server listening on port. The handler is usable without
// starting the listener.
func New(port int, generator Generator, st store.Store) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		generator: generator,
		store:     st,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLoggingMiddleware)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate/post", s.handleGeneratePost)
		r.Post("/generate/thread", s.handleGenerateThread)
		r.Post("/generate/bio", s.handleGenerateBio)

		r.Get("/saved", s.handleListSaved)
		r.Delete("/saved/{id}", s.handleDeleteSaved)

		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handlePutPreferences)
	})

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // completions can be slow
	}

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

func requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Infow("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
