// Package api exposes the report composition engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/sono-report-server/internal/config"
	"github.com/sono-report-server/internal/service"
)

// Server represents the HTTP server.
type Server struct {
	cfg     *config.Config
	log     *logrus.Logger
	reports *service.ReportService
	router  *gin.Engine
	server  *http.Server
}

// NewServer creates a new HTTP server instance.
func NewServer(cfg *config.Config, reports *service.ReportService, logger *logrus.Logger) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	router.Use(rateLimitMiddleware(limiter))

	s := &Server{
		cfg:     cfg,
		log:     logger,
		reports: reports,
		router:  router,
	}
	s.setupRoutes()

	return s
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server and blocks until the context is cancelled,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/rrn/parse", s.handleParseRRN)

		v1.GET("/templates", s.handleListTemplates)
		v1.GET("/templates/:code", s.handleGetTemplate)

		v1.POST("/impression", s.handleComposeImpression)

		v1.POST("/reports/preview", s.handlePreviewReport)
		v1.POST("/reports", s.handleSaveReport)
		v1.GET("/reports", s.handleListReports)
		v1.GET("/reports/export", s.handleExportReports)
		v1.POST("/reports/import", s.handleImportReports)
		v1.GET("/reports/:id", s.handleGetReport)
		v1.GET("/reports/:id/document", s.handleGetDocument)
		v1.DELETE("/reports/:id", s.handleDeleteReport)
	}
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
