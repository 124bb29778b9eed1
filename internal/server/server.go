// Package server exposes the last-published frame and track metadata
// over HTTP for browser preview. Read-only: all state comes from the
// shared frame cell written by the sync loop.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/config"
	"github.com/yuckyman/PiMO/internal/domain"
	"github.com/yuckyman/PiMO/internal/engine"
	"github.com/yuckyman/PiMO/internal/metrics"
	"github.com/yuckyman/PiMO/internal/pet"
)

// Server is the browser preview HTTP server
type Server struct {
	logger *zap.Logger
	cfg    *config.AppConfig
	frame  *engine.Frame
	stats  domain.StatsSource
	pet    *pet.Pet
	router *gin.Engine
	srv    *http.Server
}

// New builds the router and handlers
func New(
	logger *zap.Logger,
	cfg *config.AppConfig,
	frame *engine.Frame,
	stats domain.StatsSource,
	p *pet.Pet,
	m *metrics.Metrics,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		logger: logger,
		cfg:    cfg,
		frame:  frame,
		stats:  stats,
		pet:    p,
		router: gin.New(),
	}

	s.router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	s.router.Use(cors.New(corsConfig))

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "pimo"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	s.router.GET("/", s.handleIndex)
	s.router.GET("/display.png", s.handleDisplay)
	s.router.GET("/api/track", s.handleTrack)
	s.router.GET("/api/stats", s.handleStats)
	s.router.GET("/api/pet", s.handlePet)
	s.router.GET("/cache/:file", s.handleCachedImage)

	return s
}

// Start begins serving in a goroutine. Non-blocking.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.router,
	}

	go func() {
		s.logger.Info("Preview server listening", zap.Int("port", s.cfg.Port))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Preview server failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleDisplay(c *gin.Context) {
	png, ok := s.frame.PNG()
	if !ok {
		c.String(http.StatusNotFound, "no frame published yet")
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) handleTrack(c *gin.Context) {
	track, offline, updatedAt, ok := s.frame.Snapshot()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"track": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"track":      track,
		"offline":    offline,
		"updated_at": updatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	stats, err := s.stats.UserStats(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handlePet(c *gin.Context) {
	c.JSON(http.StatusOK, s.pet.Snapshot())
}

// handleCachedImage serves cached artwork files by name, restricted to
// image extensions inside the cache directory.
func (s *Server) handleCachedImage(c *gin.Context) {
	name := filepath.Base(c.Param("file"))
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.File(filepath.Join(s.cfg.CacheDir, name))
}
