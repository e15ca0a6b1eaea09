package generator

import (
	"math"
	"strings"

	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
)

// sentimentRule pairs a keyword trigger list with the numeric sub-ranges its
// label maps to. Rules are evaluated top-down, first match wins, so
// very-negative keywords shadow negative ones.
type sentimentRule struct {
	label      string
	keywords   []string
	scoreLow   float64
	scoreHigh  float64
	churnRisks []string
	churnLow   float64
	churnHigh  float64
}

var sentimentRules = []sentimentRule{
	{
		label:      "very_negative",
		keywords:   []string{"switch", "port", "competitor", "leaving"},
		scoreLow:   -0.95, scoreHigh: -0.70,
		churnRisks: []string{"high", "critical"},
		churnLow:   0.70, churnHigh: 0.95,
	},
	{
		label:      "negative",
		keywords:   []string{"frustrated", "cheating", "fraud", "unacceptable", "disappointed", "poor", "terrible"},
		scoreLow:   -0.70, scoreHigh: -0.30,
		churnRisks: []string{"medium", "high"},
		churnLow:   0.40, churnHigh: 0.70,
	},
	{
		label:      "positive",
		keywords:   []string{"interested", "inquiry", "upgrade", "want to"},
		scoreLow:   0.30, scoreHigh: 0.85,
		churnRisks: []string{"low"},
		churnLow:   0.05, churnHigh: 0.25,
	},
}

var neutralRule = sentimentRule{
	label:      "neutral",
	scoreLow:   -0.20, scoreHigh: 0.30,
	churnRisks: []string{"low", "medium"},
	churnLow:   0.20, churnHigh: 0.50,
}

// ClassifySentiment scans the lower-cased text against the prioritized rule
// list and returns the matched label. This is a deliberate deterministic
// stand-in for a scoring model.
func ClassifySentiment(text string) string {
	return matchRule(text).label
}

func matchRule(text string) sentimentRule {
	lower := strings.ToLower(text)
	for _, rule := range sentimentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule
			}
		}
	}
	return neutralRule
}

// scoreSentiment derives the full sentiment/churn tuple for a complaint:
// labels come from the keyword scan, scores are drawn from the label's
// disjoint sub-range so a label never pairs with an out-of-range score.
func scoreSentiment(e *rng.Engine, text string) (sentiment string, sentimentScore float64, churnRisk string, churnScore float64) {
	rule := matchRule(text)
	sentiment = rule.label
	sentimentScore = round2(e.FloatBetween(rule.scoreLow, rule.scoreHigh))
	churnRisk = rng.Pick(e, rule.churnRisks)
	churnScore = round2(e.FloatBetween(rule.churnLow, rule.churnHigh))
	return sentiment, sentimentScore, churnRisk, churnScore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
