package ai

// SentimentResult is the structured classification of one complaint text.
// Fields mirror the generated interaction schema, so fallback values are
// always legal dataset values.
type SentimentResult struct {
	Sentiment         string   `json:"sentiment"`
	SentimentScore    float64  `json:"sentiment_score"`
	Category          string   `json:"category"`
	ChurnRisk         string   `json:"churn_risk"`
	KeyIssues         []string `json:"key_issues"`
	RecommendedAction string   `json:"recommended_action"`
}

// Topic is one cluster surfaced by topic extraction.
type Topic struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Percentage  int    `json:"percentage"`
	Severity    string `json:"severity"`
}

// RecommendationBundle is a per-customer recommendation payload.
type RecommendationBundle struct {
	Primary           Recommendation   `json:"primary_recommendation"`
	Secondary         []Recommendation `json:"secondary_recommendations"`
	RetentionStrategy string           `json:"retention_strategy"`
	Tone              string           `json:"tone"`
}

type Recommendation struct {
	Product        string `json:"product"`
	Reason         string `json:"reason"`
	ExpectedImpact string `json:"expected_impact,omitempty"`
}

// QueryAnswer is a conversational answer to a natural-language question.
type QueryAnswer struct {
	Answer          string   `json:"answer"`
	Conversational  bool     `json:"conversational"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	DataCitations   []string `json:"data_citations"`
}

// CustomerContext is the profile slice handed to recommendation prompts.
type CustomerContext struct {
	CustomerID   string
	Name         string
	TenureMonths int
	PlanValue    int
	ServiceType  string
	CurrentPlan  string
}
