// Package api exposes question answering over an HTTP JSON API.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
)

// Ports holds the driving services the API exposes.
type Ports struct {
	Answers    driving.AnswerProvider
	Documents  driving.DocumentService
	Evaluation driving.EvaluationService
	History    driving.HistoryService
}

// Server is the HTTP API server.
type Server struct {
	router *gin.Engine
	ports  Ports
}

// NewServer creates the API server and registers its routes.
func NewServer(ports Ports) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		ports:  ports,
	}
	s.setupRoutes()
	return s
}

// Router returns the underlying gin engine, for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes defines all API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.healthHandler)
	s.router.GET("/languages", s.languagesHandler)

	s.router.POST("/ask", s.askHandler)
	s.router.POST("/evaluate", s.evaluateHandler)
	s.router.POST("/ratings", s.rateHandler)

	s.router.GET("/history", s.historyHandler)
	s.router.GET("/history/:id", s.historyGetHandler)

	docRoutes := s.router.Group("/documents")
	{
		docRoutes.GET("", s.documentsHandler)
		docRoutes.GET("/:id", s.documentGetHandler)
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
