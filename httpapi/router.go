// Package httpapi exposes a campus.Graph over HTTP with gin.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/campusmap/campus"
	"github.com/katalvlaran/campusmap/config"
)

// Handlers serves campus map queries.
type Handlers struct {
	graph  *campus.Graph
	logger *slog.Logger
	speed  float64 // default walking speed, meters per minute
}

// NewHandlers wires handlers to g. A speed that is not a finite positive
// number falls back to campus.DefaultWalkingSpeed.
func NewHandlers(g *campus.Graph, logger *slog.Logger, speed float64) *Handlers {
	if !validSpeed(speed) {
		speed = campus.DefaultWalkingSpeed
	}
	return &Handlers{graph: g, logger: logger, speed: speed}
}

// NewRouter builds the gin engine with CORS, request logging and all routes.
func NewRouter(h *Handlers, cfg config.HTTPConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/locations", h.handleLocations)
	r.GET("/locations/:id/neighbors", h.handleNeighbors)
	r.GET("/distance", h.handleDistance)
	r.GET("/route", h.handleRoute)
	r.GET("/reachable", h.handleReachable)
	r.POST("/itinerary", h.handleItinerary)
	r.POST("/edges", h.handleAddEdge)

	return r
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
