// Package server exposes read-only aggregate and analysis endpoints over the
// generated dataset. It consumes the CSV tables through DuckDB views and
// never mutates them.
package server

import (
	"database/sql"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/Chetana10r/smart-campaign-targeting/internal/ai"
	"github.com/Chetana10r/smart-campaign-targeting/internal/db"
)

type Server struct {
	db       *sql.DB
	analyzer *ai.Analyzer
	router   *gin.Engine
}

func New(database *sql.DB, analyzer *ai.Analyzer) *Server {
	s := &Server{
		db:       database,
		analyzer: analyzer,
		router:   gin.Default(),
	}

	s.router.GET("/", s.root)
	s.router.GET("/health", s.health)
	s.router.GET("/stats", s.stats)
	s.router.GET("/top-issues", s.topIssues)
	s.router.GET("/trends", s.trendSlices)
	s.router.GET("/campaigns", s.campaigns)
	s.router.GET("/leads/:category", s.leads)
	s.router.GET("/recommendations/:customer_id", s.recommendations)
	s.router.POST("/query", s.query)
	s.router.POST("/analyze-text", s.analyzeText)
	s.router.GET("/topic-modeling", s.topicModeling)
	s.router.GET("/categories-summary", s.categoriesSummary)

	return s
}

func (s *Server) Run(addr string) error {
	counts, err := db.RowCounts(s.db)
	if err != nil {
		return err
	}
	for view, count := range counts {
		log.Infof("loaded %d %s rows", count, view)
	}

	log.Infof("serving on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) root(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Smart Campaign Targeting API",
		"version": "1.0",
		"status":  "running",
		"endpoints": []string{
			"/stats", "/top-issues", "/trends", "/campaigns", "/query",
			"/analyze-text", "/leads/{category}", "/recommendations/{customer_id}",
			"/topic-modeling", "/categories-summary",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	counts, err := db.RowCounts(s.db)
	if err != nil {
		log.Errorf("health check failed: %v", err)
		c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"status": "healthy", "data_loaded": counts})
}
