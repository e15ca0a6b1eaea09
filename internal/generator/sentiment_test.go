package generator

import (
	"testing"

	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I want to switch to Airtel immediately", "very_negative"},
		{"Planning to PORT my number out", "very_negative"},
		{"Jio is offering this cheaper, why am I paying more to my competitor-loving operator", "very_negative"},
		{"Very frustrated with the constant disconnections", "negative"},
		{"This is unacceptable, I was charged twice", "negative"},
		{"Terrible speeds every evening", "negative"},
		{"Interested in upgrading my plan to 200Mbps", "positive"},
		{"Inquiry about international roaming packs", "positive"},
		{"My set-top box shows error E-16", "neutral"},
		{"", "neutral"},
	}

	for _, tt := range tests {
		if got := ClassifySentiment(tt.text); got != tt.want {
			t.Errorf("ClassifySentiment(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

// A text matching both a very-negative and a negative keyword must classify
// as very negative: rules are evaluated in priority order.
func TestClassifySentimentPrecedence(t *testing.T) {
	text := "Frustrated with the poor service, I will switch operators"
	if got := ClassifySentiment(text); got != "very_negative" {
		t.Errorf("ClassifySentiment(%q) = %s, want very_negative", text, got)
	}
}

func TestScoreSentimentRanges(t *testing.T) {
	tests := []struct {
		text       string
		label      string
		scoreLow   float64
		scoreHigh  float64
		churnRisks []string
		churnLow   float64
		churnHigh  float64
	}{
		{"switching to BSNL", "very_negative", -0.95, -0.70, []string{"high", "critical"}, 0.70, 0.95},
		{"disappointed with billing", "negative", -0.70, -0.30, []string{"medium", "high"}, 0.40, 0.70},
		{"interested in the sports pack", "positive", 0.30, 0.85, []string{"low"}, 0.05, 0.25},
		{"router light is red", "neutral", -0.20, 0.30, []string{"low", "medium"}, 0.20, 0.50},
	}

	engine := rng.New(1)
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				sentiment, score, churnRisk, churnScore := scoreSentiment(engine, tt.text)
				if sentiment != tt.label {
					t.Fatalf("sentiment = %s, want %s", sentiment, tt.label)
				}
				if score < tt.scoreLow || score > tt.scoreHigh {
					t.Fatalf("score %.2f outside [%.2f, %.2f]", score, tt.scoreLow, tt.scoreHigh)
				}
				if churnScore < tt.churnLow || churnScore > tt.churnHigh {
					t.Fatalf("churn score %.2f outside [%.2f, %.2f]", churnScore, tt.churnLow, tt.churnHigh)
				}
				if !containsString(tt.churnRisks, churnRisk) {
					t.Fatalf("churn risk %s not in %v", churnRisk, tt.churnRisks)
				}
			}
		})
	}
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
