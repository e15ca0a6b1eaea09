package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/Chetana10r/smart-campaign-targeting/internal/ai"
)

type queryRequest struct {
	Question       string `json:"question" binding:"required"`
	MaxContextRows int    `json:"max_context_rows"`
}

type analyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *Server) stats(c *gin.Context) {
	var total, uniqueCustomers, unresolved int
	var start, end string
	var avgResolution float64

	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(DISTINCT customer_id),
		       CAST(MIN(date) AS VARCHAR),
		       CAST(MAX(date) AS VARCHAR),
		       COALESCE(AVG(resolution_time_hours), 0),
		       COUNT(*) FILTER (WHERE resolution_status = 'unresolved')
		FROM interactions
	`).Scan(&total, &uniqueCustomers, &start, &end, &avgResolution, &unresolved)
	if err != nil {
		s.fail(c, "failed to compute stats", err)
		return
	}

	byCategory, err := s.countsBy("category")
	if err != nil {
		s.fail(c, "failed to compute stats", err)
		return
	}
	bySentiment, err := s.countsBy("sentiment")
	if err != nil {
		s.fail(c, "failed to compute stats", err)
		return
	}
	byChurnRisk, err := s.countsBy("churn_risk")
	if err != nil {
		s.fail(c, "failed to compute stats", err)
		return
	}
	byGeography, err := s.queryMaps(`
		SELECT geography, COUNT(*) AS count
		FROM interactions GROUP BY geography
		ORDER BY count DESC, geography LIMIT 10
	`)
	if err != nil {
		s.fail(c, "failed to compute stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_interactions":  total,
		"total_customers":     uniqueCustomers,
		"date_range":          gin.H{"start": start, "end": end},
		"by_category":         byCategory,
		"by_sentiment":        bySentiment,
		"by_churn_risk":       byChurnRisk,
		"by_geography":        byGeography,
		"avg_resolution_time": avgResolution,
		"unresolved_count":    unresolved,
	})
}

func (s *Server) topIssues(c *gin.Context) {
	limit := intQuery(c, "limit", 10)

	issues, err := s.queryMaps(`
		SELECT category,
		       COUNT(*) AS count,
		       ROUND(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM interactions), 2) AS percentage,
		       ROUND(AVG(churn_score), 2) AS avg_churn_score,
		       COUNT(*) FILTER (WHERE churn_risk IN ('high', 'critical')) AS high_churn_count,
		       COUNT(*) FILTER (WHERE resolution_status = 'unresolved') AS unresolved_count
		FROM interactions
		GROUP BY category
		ORDER BY count DESC
		LIMIT ?
	`, limit)
	if err != nil {
		s.fail(c, "failed to get top issues", err)
		return
	}

	for _, issue := range issues {
		category, _ := issue["category"].(string)
		samples, err := s.sampleTexts(category, 3)
		if err != nil {
			s.fail(c, "failed to get top issues", err)
			return
		}
		issue["sample_complaints"] = samples
	}

	c.JSON(http.StatusOK, issues)
}

func (s *Server) trendSlices(c *gin.Context) {
	query := `
		SELECT week, category, COUNT(*) AS count, AVG(churn_score) AS avg_churn_score
		FROM interactions
		WHERE 1 = 1`
	var args []any

	if category := c.Query("category"); category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	if geography := c.Query("geography"); geography != "" {
		query += " AND geography = ?"
		args = append(args, geography)
	}
	query += " GROUP BY week, category ORDER BY week, category"

	weekly, err := s.queryMaps(query, args...)
	if err != nil {
		s.fail(c, "failed to get trends", err)
		return
	}
	c.JSON(http.StatusOK, weekly)
}

func (s *Server) campaigns(c *gin.Context) {
	rows, err := s.queryMaps("SELECT * FROM campaigns ORDER BY campaign_id")
	if err != nil {
		s.fail(c, "failed to get campaigns", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) leads(c *gin.Context) {
	category := c.Param("category")
	limit := intQuery(c, "limit", 50)

	rows, err := s.queryMaps(`
		SELECT i.customer_id,
		       c.customer_name,
		       i.geography,
		       CASE WHEN LENGTH(i.interaction_text) > 150
		            THEN SUBSTRING(i.interaction_text, 1, 150) || '...'
		            ELSE i.interaction_text END AS issue_summary,
		       i.sentiment,
		       i.churn_risk,
		       i.churn_score,
		       i.customer_tenure_months AS tenure_months,
		       i.current_plan_value,
		       i.operator
		FROM interactions i
		JOIN customers c ON c.customer_id = i.customer_id
		WHERE i.category = ? AND i.churn_risk IN ('high', 'critical')
		ORDER BY i.churn_score DESC
		LIMIT ?
	`, category, limit)
	if err != nil {
		s.fail(c, "failed to get leads", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) recommendations(c *gin.Context) {
	customerID := c.Param("customer_id")

	var customer ai.CustomerContext
	var currentPlan string
	err := s.db.QueryRow(`
		SELECT customer_id, customer_name, tenure_months, current_plan_value, service_type, current_plan
		FROM customers WHERE customer_id = ?
	`, customerID).Scan(
		&customer.CustomerID, &customer.Name, &customer.TenureMonths,
		&customer.PlanValue, &customer.ServiceType, &currentPlan,
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	customer.CurrentPlan = currentPlan

	texts, err := s.queryMaps(`
		SELECT interaction_text FROM interactions
		WHERE customer_id = ? ORDER BY timestamp DESC LIMIT 5
	`, customerID)
	if err != nil {
		s.fail(c, "failed to get recommendations", err)
		return
	}

	history := "No previous interactions"
	if len(texts) > 0 {
		var lines []string
		for _, row := range texts {
			if text, ok := row["interaction_text"].(string); ok {
				lines = append(lines, text)
			}
		}
		history = strings.Join(lines, "\n")
	}

	bundle := s.analyzer.GenerateRecommendations(c.Request.Context(), customer, history)
	c.JSON(http.StatusOK, gin.H{
		"customer_id":     customerID,
		"customer_name":   customer.Name,
		"current_plan":    currentPlan,
		"recommendations": bundle,
	})
}

func (s *Server) query(c *gin.Context) {
	var req queryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}
	if req.MaxContextRows <= 0 {
		req.MaxContextRows = 50
	}

	rows, err := s.queryMaps(contextQuery(req.Question), req.MaxContextRows)
	if err != nil {
		s.fail(c, "failed to build query context", err)
		return
	}

	contextJSON, err := json.Marshal(rows)
	if err != nil {
		s.fail(c, "failed to serialize query context", err)
		return
	}

	answer := s.analyzer.AnalyzeQuery(c.Request.Context(), req.Question, string(contextJSON))
	c.JSON(http.StatusOK, answer)
}

// contextQuery routes a question to a relevant row sample by keyword.
func contextQuery(question string) string {
	lower := strings.ToLower(question)
	switch {
	case containsAny(lower, "internet", "wifi", "speed", "connectivity"):
		return "SELECT * FROM interactions WHERE category LIKE 'internet%' LIMIT ?"
	case containsAny(lower, "billing", "bill", "charge", "price"):
		return "SELECT * FROM interactions WHERE category LIKE 'billing%' LIMIT ?"
	case containsAny(lower, "churn", "leaving", "switch"):
		return "SELECT * FROM interactions WHERE churn_risk IN ('high', 'critical') LIMIT ?"
	default:
		return "SELECT * FROM interactions LIMIT ?"
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func (s *Server) analyzeText(c *gin.Context) {
	var req analyzeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	c.JSON(http.StatusOK, s.analyzer.AnalyzeSentiment(c.Request.Context(), req.Text))
}

func (s *Server) topicModeling(c *gin.Context) {
	sampleSize := intQuery(c, "sample_size", 50)
	if sampleSize > 50 {
		sampleSize = 50
	}

	rows, err := s.queryMaps("SELECT interaction_text FROM interactions USING SAMPLE ? ROWS", sampleSize)
	if err != nil {
		s.fail(c, "failed to sample interactions", err)
		return
	}

	var texts []string
	for _, row := range rows {
		if text, ok := row["interaction_text"].(string); ok {
			texts = append(texts, text)
		}
	}

	topics := s.analyzer.ExtractTopics(c.Request.Context(), texts, 7)
	c.JSON(http.StatusOK, gin.H{"topics": topics, "sample_size": len(texts)})
}

func (s *Server) categoriesSummary(c *gin.Context) {
	rows, err := s.queryMaps(`
		SELECT category,
		       COUNT(*) AS count,
		       ROUND(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM interactions), 2) AS percentage,
		       ROUND(AVG(churn_score), 2) AS avg_churn_score,
		       COUNT(*) FILTER (WHERE churn_risk IN ('high', 'critical')) AS high_risk_count,
		       ROUND(COALESCE(AVG(resolution_time_hours), 0), 2) AS avg_resolution_time
		FROM interactions
		GROUP BY category
		ORDER BY count DESC
		LIMIT 10
	`)
	if err != nil {
		s.fail(c, "failed to summarize categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": rows})
}

func (s *Server) fail(c *gin.Context, message string, err error) {
	log.Errorf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
