package trends

import (
	"testing"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
)

// Jan 1st 2023 is a Sunday, so these dates fall in weeks W01 and W02.
var (
	week1 = time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC)
	week2 = time.Date(2023, 1, 9, 10, 0, 0, 0, time.UTC)
)

func interactionAt(ts time.Time, category, geography string, churnScore float64) model.Interaction {
	return model.Interaction{
		Timestamp:  ts,
		Category:   category,
		Geography:  geography,
		ChurnScore: churnScore,
	}
}

func TestAggregateChangePercentage(t *testing.T) {
	interactions := []model.Interaction{
		interactionAt(week1, "internet_speed", "Mumbai", 0.4),
		interactionAt(week1, "internet_speed", "Mumbai", 0.6),
		interactionAt(week2, "internet_speed", "Mumbai", 0.5),
		interactionAt(week2, "internet_speed", "Mumbai", 0.5),
		interactionAt(week2, "internet_speed", "Mumbai", 0.5),
	}

	records := Aggregate(interactions)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first, second := records[0], records[1]
	if first.Week != "2023-W01" || second.Week != "2023-W02" {
		t.Fatalf("weeks = %s, %s; want 2023-W01, 2023-W02", first.Week, second.Week)
	}

	if first.ChangePercentage != 0 {
		t.Errorf("first week change = %.2f, want 0", first.ChangePercentage)
	}
	if first.Trend != "stable" {
		t.Errorf("first week trend = %s, want stable", first.Trend)
	}
	if first.AvgChurnScore != 0.5 {
		t.Errorf("first week avg churn = %.2f, want 0.50", first.AvgChurnScore)
	}

	// 2 -> 3 interactions week over week is +50%.
	if second.ChangePercentage != 50 {
		t.Errorf("second week change = %.2f, want 50", second.ChangePercentage)
	}
	if second.Trend != "increasing" {
		t.Errorf("second week trend = %s, want increasing", second.Trend)
	}
}

func TestAggregateSeriesBoundaries(t *testing.T) {
	// Two independent series: change must never carry across category or
	// geography boundaries.
	interactions := []model.Interaction{
		interactionAt(week1, "billing_overcharge", "Delhi", 0.3),
		interactionAt(week1, "billing_overcharge", "Delhi", 0.3),
		interactionAt(week1, "billing_overcharge", "Mumbai", 0.3),
		interactionAt(week2, "network_quality", "Delhi", 0.3),
	}

	records := Aggregate(interactions)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for _, r := range records {
		if r.ChangePercentage != 0 {
			t.Errorf("%s/%s/%s: change %.2f leaked across series boundary",
				r.Category, r.Geography, r.Week, r.ChangePercentage)
		}
	}
}

func TestAggregateDeterministicOrder(t *testing.T) {
	interactions := []model.Interaction{
		interactionAt(week1, "network_quality", "Pune", 0.2),
		interactionAt(week1, "billing_overcharge", "Delhi", 0.2),
		interactionAt(week1, "billing_overcharge", "Chennai", 0.2),
	}

	records := Aggregate(interactions)
	want := []struct{ category, geography string }{
		{"billing_overcharge", "Chennai"},
		{"billing_overcharge", "Delhi"},
		{"network_quality", "Pune"},
	}
	for i, w := range want {
		if records[i].Category != w.category || records[i].Geography != w.geography {
			t.Errorf("record %d = %s/%s, want %s/%s",
				i, records[i].Category, records[i].Geography, w.category, w.geography)
		}
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		change float64
		want   string
	}{
		{50, "increasing"},
		{5.01, "increasing"},
		{5, "stable"},
		{0, "stable"},
		{-5, "stable"},
		{-5.01, "decreasing"},
		{-40, "decreasing"},
	}
	for _, tt := range tests {
		if got := classifyTrend(tt.change); got != tt.want {
			t.Errorf("classifyTrend(%.2f) = %s, want %s", tt.change, got, tt.want)
		}
	}
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		count int
		churn float64
		want  string
	}{
		{60, 0.8, "critical"},
		{60, 0.6, "high"},
		{40, 0.6, "high"},
		{40, 0.4, "medium"},
		{20, 0.9, "medium"},
		{10, 0.9, "low"},
		{5, 0.1, "low"},
	}
	for _, tt := range tests {
		if got := classifySeverity(tt.count, tt.churn); got != tt.want {
			t.Errorf("classifySeverity(%d, %.1f) = %s, want %s", tt.count, tt.churn, got, tt.want)
		}
	}
}
