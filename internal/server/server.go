// Package server exposes the catalog over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"tagscope/internal/catalog"
	"tagscope/internal/domain"
)

// Server serves the static catalog and filtered views of it
type Server struct {
	echo     *echo.Echo
	logger   *zap.Logger
	config   *Config
	projects []domain.Project
	index    catalog.TagIndex
}

// Config holds HTTP server configuration
type Config struct {
	Host string
	Port int
}

// NewServer creates a server for a loaded dataset. The dataset is read-only
// for the lifetime of the server, so handlers share it without locking.
func NewServer(projects []domain.Project, logger *zap.Logger, cfg *Config) (*Server, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8080,
		}
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:     e,
		logger:   logger,
		config:   cfg,
		projects: projects,
		index:    catalog.BuildTagIndex(projects),
	}

	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/data.json", s.handleData)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/projects", s.handleProjects)
	v1.GET("/tags", s.handleTags)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// HealthResponse is the response body for GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Projects int    `json:"projects"`
}

// ProjectsResponse is the response body for GET /api/v1/projects
type ProjectsResponse struct {
	Search   string           `json:"search"`
	Tags     []string         `json:"tags"`
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Projects []domain.Project `json:"projects"`
}

// TagsResponse is the response body for GET /api/v1/tags
type TagsResponse struct {
	Top []string          `json:"top"`
	All []catalog.TagStat `json:"all"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Projects: len(s.projects)})
}

// handleData returns the catalog as it was loaded
func (s *Server) handleData(c echo.Context) error {
	return c.JSON(http.StatusOK, s.projects)
}

// handleProjects filters with ?q= and repeated ?tag= parameters
func (s *Server) handleProjects(c echo.Context) error {
	term := c.QueryParam("q")
	tags := c.QueryParams()["tag"]
	if tags == nil {
		tags = []string{}
	}

	filtered := catalog.FilterProjects(s.projects, term, catalog.TagList(tags))

	s.logger.Debug("filtered projects",
		zap.String("search", term),
		zap.Strings("tags", tags),
		zap.Int("count", len(filtered)),
	)

	return c.JSON(http.StatusOK, ProjectsResponse{
		Search:   term,
		Tags:     tags,
		Total:    len(s.projects),
		Count:    len(filtered),
		Projects: filtered,
	})
}

// handleTags returns the top-N ranking and every tag alphabetically
func (s *Server) handleTags(c echo.Context) error {
	top := catalog.DefaultTopTags
	if raw := c.QueryParam("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.logger.Warn("invalid top parameter", zap.String("top", raw))
			return echo.NewHTTPError(http.StatusBadRequest, "top must be a non-negative integer")
		}
		top = n
	}

	all := catalog.AllTagsSorted(s.index)
	stats := make([]catalog.TagStat, len(all))
	for i, tag := range all {
		stats[i] = catalog.TagStat{Tag: tag, Count: s.index.Count(tag)}
	}

	return c.JSON(http.StatusOK, TagsResponse{
		Top: catalog.TopTags(s.index, top),
		All: stats,
	})
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting http server",
		zap.String("addr", s.Addr()),
		zap.Int("projects", len(s.projects)),
	)
	return s.echo.Start(s.Addr())
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
