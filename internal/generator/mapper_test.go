package generator

import (
	"fmt"
	"testing"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
)

func testCampaign() model.Campaign {
	return model.Campaign{
		CampaignID:   "CAMP_001",
		TargetIssue:  "internet_speed",
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		Targeted:     200,
		Contacted:    190,
		Responded:    60,
		Converted:    30,
		AvgDealValue: 1000,
	}
}

// testPopulation builds 300 customers of which the first 50 have an
// interaction matching the campaign's target issue.
func testPopulation() ([]model.Customer, []model.Interaction) {
	customers := make([]model.Customer, 300)
	for i := range customers {
		customers[i] = model.Customer{CustomerID: fmt.Sprintf("CUST_%d", 10000+i)}
	}

	interactions := make([]model.Interaction, 50)
	for i := range interactions {
		interactions[i] = model.Interaction{
			InteractionID: fmt.Sprintf("INT_%06d", i),
			CustomerID:    customers[i].CustomerID,
			Category:      "internet_speed",
		}
	}
	return customers, interactions
}

func TestMapperSelectsTargetedCount(t *testing.T) {
	campaign := testCampaign()
	customers, interactions := testPopulation()

	mappings := NewCampaignCustomerMapper(rng.New(9)).Map(campaign, customers, interactions)
	if len(mappings) != campaign.Targeted {
		t.Fatalf("mapped %d customers, want %d", len(mappings), campaign.Targeted)
	}

	seen := make(map[string]bool, len(mappings))
	for _, m := range mappings {
		if seen[m.CustomerID] {
			t.Errorf("customer %s selected twice for the same campaign", m.CustomerID)
		}
		seen[m.CustomerID] = true
	}
}

func TestMapperFunnelImplications(t *testing.T) {
	campaign := testCampaign()
	customers, interactions := testPopulation()
	windowEnd := MappingWindowEnd(campaign)

	mappings := NewCampaignCustomerMapper(rng.New(17)).Map(campaign, customers, interactions)

	var contacted, responded, converted int
	for _, m := range mappings {
		if m.Responded && !m.Contacted {
			t.Errorf("%s responded without being contacted", m.CustomerID)
		}
		if m.Converted && !m.Responded {
			t.Errorf("%s converted without responding", m.CustomerID)
		}

		if m.Contacted != (m.ContactedDate != nil) {
			t.Errorf("%s: contacted flag and date disagree", m.CustomerID)
		}
		if m.Responded != (m.ResponseDate != nil) {
			t.Errorf("%s: responded flag and date disagree", m.CustomerID)
		}
		if m.Converted != (m.ConversionDate != nil) {
			t.Errorf("%s: converted flag and date disagree", m.CustomerID)
		}

		if m.ContactedDate != nil && m.ContactedDate.Before(campaign.StartDate) {
			t.Errorf("%s contacted before the campaign started", m.CustomerID)
		}
		if m.ResponseDate != nil && !m.ResponseDate.After(*m.ContactedDate) {
			t.Errorf("%s responded on or before contact date", m.CustomerID)
		}
		if m.ConversionDate != nil {
			if !m.ConversionDate.After(*m.ResponseDate) {
				t.Errorf("%s converted on or before response date", m.CustomerID)
			}
			if m.ConversionDate.After(windowEnd) {
				t.Errorf("%s converted after the outreach window", m.CustomerID)
			}
		}

		if m.Converted {
			if m.Revenue < campaign.AvgDealValue-200 || m.Revenue > campaign.AvgDealValue+200 {
				t.Errorf("%s: revenue %d outside deal value band", m.CustomerID, m.Revenue)
			}
			if m.OfferAccepted == "" {
				t.Errorf("%s converted without an accepted offer", m.CustomerID)
			}
		} else {
			if m.Revenue != 0 {
				t.Errorf("%s: unconverted customer has revenue %d", m.CustomerID, m.Revenue)
			}
			if m.OfferAccepted != "" {
				t.Errorf("%s: unconverted customer accepted offer %q", m.CustomerID, m.OfferAccepted)
			}
		}
		if !m.Responded && m.Feedback != "" {
			t.Errorf("%s: unresponsive customer left feedback %q", m.CustomerID, m.Feedback)
		}

		if m.Contacted {
			contacted++
		}
		if m.Responded {
			responded++
		}
		if m.Converted {
			converted++
		}
	}

	// Stage outcomes are independent draws, so realized counts only
	// approximate the campaign aggregates. Sanity-check the ordering.
	if contacted < responded || responded < converted {
		t.Errorf("realized funnel not monotonic: %d/%d/%d", contacted, responded, converted)
	}
	if contacted == 0 {
		t.Error("no customer was contacted at a 95% contact rate")
	}
}

func TestMapperPoolWithoutPadding(t *testing.T) {
	campaign := testCampaign()
	campaign.Targeted = 30
	customers, interactions := testPopulation()

	mappings := NewCampaignCustomerMapper(rng.New(2)).Map(campaign, customers, interactions)
	if len(mappings) != 30 {
		t.Fatalf("mapped %d customers, want 30", len(mappings))
	}

	// With 50 matching customers and 30 slots, every recipient must come
	// from the interaction-history pool.
	eligible := make(map[string]bool, len(interactions))
	for _, in := range interactions {
		eligible[in.CustomerID] = true
	}
	for _, m := range mappings {
		if !eligible[m.CustomerID] {
			t.Errorf("%s selected without a matching interaction", m.CustomerID)
		}
	}
}
