package generator

import (
	"testing"

	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
)

func TestCampaignFunnelMonotonic(t *testing.T) {
	campaigns := NewCampaignGenerator(rng.New(3), testNow).Generate(100)
	if len(campaigns) != 100 {
		t.Fatalf("generated %d campaigns, want 100", len(campaigns))
	}

	for _, c := range campaigns {
		if c.Targeted < c.Contacted || c.Contacted < c.Responded || c.Responded < c.Converted {
			t.Errorf("%s: funnel not monotonic: %d >= %d >= %d >= %d",
				c.CampaignID, c.Targeted, c.Contacted, c.Responded, c.Converted)
		}
		if !c.StartDate.Before(c.EndDate) {
			t.Errorf("%s: start %s not before end %s", c.CampaignID, c.StartDate, c.EndDate)
		}

		completed := c.EndDate.Before(testNow)
		if completed && c.Status != "Completed" {
			t.Errorf("%s: ended campaign has status %s", c.CampaignID, c.Status)
		}
		if !completed && c.Status != "Active" {
			t.Errorf("%s: running campaign has status %s", c.CampaignID, c.Status)
		}

		if c.ConversionRate != StageRate(c.Converted, c.Targeted) {
			t.Errorf("%s: conversion rate %.2f not derived from counts", c.CampaignID, c.ConversionRate)
		}
		if c.ResponseRate != StageRate(c.Responded, c.Contacted) {
			t.Errorf("%s: response rate %.2f not derived from counts", c.CampaignID, c.ResponseRate)
		}
		if c.Revenue != c.Converted*c.AvgDealValue {
			t.Errorf("%s: revenue %d != converted %d * deal value %d",
				c.CampaignID, c.Revenue, c.Converted, c.AvgDealValue)
		}
	}
}

func TestStageRate(t *testing.T) {
	tests := []struct {
		count    int
		upstream int
		want     float64
	}{
		{90, 1000, 9.0},
		{300, 900, 33.33},
		{900, 1000, 90.0},
		{0, 500, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := StageRate(tt.count, tt.upstream); got != tt.want {
			t.Errorf("StageRate(%d, %d) = %.2f, want %.2f", tt.count, tt.upstream, got, tt.want)
		}
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month int
		want  int
	}{
		{1, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3}, {9, 3}, {10, 4}, {12, 4},
	}
	for _, tt := range tests {
		day := testNow.AddDate(0, tt.month-int(testNow.Month()), 0)
		if got := quarterOf(day); got != tt.want {
			t.Errorf("quarterOf(month %d) = %d, want %d", tt.month, got, tt.want)
		}
	}
}
