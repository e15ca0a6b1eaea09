package generator

import (
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
	"github.com/Chetana10r/smart-campaign-targeting/internal/telecom"
)

// CampaignCustomerMapper simulates each campaign's outreach funnel across a
// concrete customer set. Per-customer stage outcomes are independent
// Bernoulli draws with probabilities taken from the campaign's aggregate
// ratios, so realized totals approximate the declared aggregates in
// expectation rather than matching them exactly. That approximation is a
// documented property of the simulation, not a defect.
type CampaignCustomerMapper struct {
	engine *rng.Engine
}

func NewCampaignCustomerMapper(engine *rng.Engine) *CampaignCustomerMapper {
	return &CampaignCustomerMapper{engine: engine}
}

// Map selects the campaign's recipient set and simulates each recipient's
// progression through the contacted/responded/converted funnel.
func (m *CampaignCustomerMapper) Map(campaign model.Campaign, customers []model.Customer, interactions []model.Interaction) []model.Mapping {
	pool := m.candidatePool(campaign, customers, interactions)
	selected := rng.PickN(m.engine, pool, campaign.Targeted)

	mappings := make([]model.Mapping, 0, len(selected))
	for _, customerID := range selected {
		mappings = append(mappings, m.simulateFunnel(campaign, customerID))
	}
	return mappings
}

// candidatePool gathers customers whose interaction history includes the
// campaign's target issue, padded with uniformly drawn customers from the
// remainder of the base when the history pool falls short of the targeted
// count. Shortfall is an accepted data-sufficiency condition, never an
// error.
func (m *CampaignCustomerMapper) candidatePool(campaign model.Campaign, customers []model.Customer, interactions []model.Interaction) []string {
	inPool := make(map[string]bool)
	var pool []string
	for _, interaction := range interactions {
		if interaction.Category != campaign.TargetIssue || inPool[interaction.CustomerID] {
			continue
		}
		inPool[interaction.CustomerID] = true
		pool = append(pool, interaction.CustomerID)
	}

	if len(pool) >= campaign.Targeted {
		return pool
	}

	var remainder []string
	for _, customer := range customers {
		if !inPool[customer.CustomerID] {
			remainder = append(remainder, customer.CustomerID)
		}
	}
	padding := rng.PickN(m.engine, remainder, campaign.Targeted-len(pool))
	return append(pool, padding...)
}

// simulateFunnel walks one customer through the four-state funnel. Each
// stage is reachable only through the previous one: an uncontacted customer
// can never respond or convert.
func (m *CampaignCustomerMapper) simulateFunnel(campaign model.Campaign, customerID string) model.Mapping {
	mapping := model.Mapping{
		CampaignID: campaign.CampaignID,
		CustomerID: customerID,
	}

	mapping.Contacted = m.engine.Chance(stageProbability(campaign.Contacted, campaign.Targeted))
	if !mapping.Contacted {
		return mapping
	}
	contactedDate := campaign.StartDate.AddDate(0, 0, m.engine.IntBetween(0, 10))
	mapping.ContactedDate = &contactedDate

	mapping.Responded = m.engine.Chance(stageProbability(campaign.Responded, campaign.Contacted))
	if !mapping.Responded {
		return mapping
	}
	responseDate := contactedDate.AddDate(0, 0, m.engine.IntBetween(1, 5))
	mapping.ResponseDate = &responseDate
	mapping.Feedback = rng.Pick(m.engine, telecom.FeedbackChoices)

	mapping.Converted = m.engine.Chance(stageProbability(campaign.Converted, campaign.Responded))
	if !mapping.Converted {
		return mapping
	}
	conversionDate := responseDate.AddDate(0, 0, m.engine.IntBetween(1, 7))
	mapping.ConversionDate = &conversionDate
	mapping.OfferAccepted = rng.Pick(m.engine, telecom.ConvertedOffers)
	mapping.Revenue = campaign.AvgDealValue + m.engine.IntBetween(-200, 200)

	return mapping
}

func stageProbability(count, upstream int) float64 {
	if upstream <= 0 {
		return 0
	}
	return float64(count) / float64(upstream)
}

// MappingWindowEnd is the latest possible event date for a campaign: start
// plus the chained 10+5+7 day offsets.
func MappingWindowEnd(campaign model.Campaign) time.Time {
	return campaign.StartDate.AddDate(0, 0, 22)
}
