package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
	"github.com/Chetana10r/smart-campaign-targeting/internal/telecom"
)

// CampaignGenerator produces the campaign catalog. Each funnel stage count
// is derived as a ratio of its parent, so targeted >= contacted >= responded
// >= converted holds by construction.
type CampaignGenerator struct {
	engine *rng.Engine
	now    time.Time
}

func NewCampaignGenerator(engine *rng.Engine, now time.Time) *CampaignGenerator {
	return &CampaignGenerator{engine: engine, now: now}
}

func (g *CampaignGenerator) Generate(n int) []model.Campaign {
	campaigns := make([]model.Campaign, 0, n)
	for i := 0; i < n; i++ {
		campaigns = append(campaigns, g.generateOne(i))
	}
	return campaigns
}

func (g *CampaignGenerator) generateOne(index int) model.Campaign {
	campaignType := rng.Pick(g.engine, telecom.CampaignTypes)
	targetIssue := rng.Pick(g.engine, telecom.Categories)

	start := g.now.AddDate(0, 0, -g.engine.IntBetween(30, 180))
	end := start.AddDate(0, 0, g.engine.IntBetween(15, 60))

	targeted := g.engine.IntBetween(100, 2000)
	contacted := int(float64(targeted) * g.engine.FloatBetween(0.85, 0.98))
	responded := int(float64(contacted) * g.engine.FloatBetween(0.15, 0.45))
	converted := int(float64(responded) * g.engine.FloatBetween(0.20, 0.60))

	avgDealValue := g.engine.IntBetween(500, 3000)
	revenue := converted * avgDealValue
	cost := targeted * g.engine.IntBetween(20, 100)

	status := "Active"
	if end.Before(g.now) {
		status = "Completed"
	}

	return model.Campaign{
		CampaignID:       fmt.Sprintf("CAMP_%03d", index),
		Name:             fmt.Sprintf("%s - %s Q%d", campaignType, issueTitle(targetIssue), quarterOf(start)),
		Type:             campaignType,
		TargetIssue:      targetIssue,
		TargetSegment:    rng.Pick(g.engine, telecom.CampaignSegments),
		StartDate:        start,
		EndDate:          end,
		Status:           status,
		Targeted:         targeted,
		Contacted:        contacted,
		Responded:        responded,
		Converted:        converted,
		ConversionRate:   StageRate(converted, targeted),
		ResponseRate:     StageRate(responded, contacted),
		Revenue:          revenue,
		Cost:             cost,
		ROI:              round2(float64(revenue-cost) / float64(cost)),
		AvgDealValue:     avgDealValue,
		OfferDescription: fmt.Sprintf("Special offer for %s customers", strings.ReplaceAll(targetIssue, "_", " ")),
		Channel:          rng.Pick(g.engine, telecom.CampaignChannels),
	}
}

// StageRate expresses a funnel count as a percentage of its upstream stage,
// rounded to two decimals.
func StageRate(count, upstream int) float64 {
	if upstream == 0 {
		return 0
	}
	return round2(float64(count) / float64(upstream) * 100)
}

func issueTitle(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		words[i] = titleCase(word)
	}
	return strings.Join(words, " ")
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
