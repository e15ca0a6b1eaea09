package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
)

// Summary is the process-wide generation report emitted next to the tables.
type Summary struct {
	RunID             string         `json:"run_id"`
	GeneratedDate     string         `json:"generated_date"`
	TotalCustomers    int            `json:"total_customers"`
	TotalInteractions int            `json:"total_interactions"`
	TotalCampaigns    int            `json:"total_campaigns"`
	TotalProducts     int            `json:"total_products"`
	TotalTrends       int            `json:"total_trends"`
	TotalMappings     int            `json:"total_mappings"`
	DateRange         DateRange      `json:"date_range"`
	CategoryCounts    map[string]int `json:"category_distribution"`
	SentimentCounts   map[string]int `json:"sentiment_distribution"`
	ChurnRiskCounts   map[string]int `json:"churn_risk_distribution"`
	OperatorCounts    map[string]int `json:"operator_distribution"`
	GeographyCounts   map[string]int `json:"geography_distribution"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BuildSummary computes row counts, the interaction date range and
// value-count breakdowns. Geography is limited to the ten most common
// customer cities.
func BuildSummary(runID string, now time.Time,
	customers []model.Customer,
	interactions []model.Interaction,
	campaigns []model.Campaign,
	products []model.Product,
	records []model.TrendRecord,
	mappings []model.Mapping,
) Summary {
	summary := Summary{
		RunID:             runID,
		GeneratedDate:     now.Format(model.TimestampLayout),
		TotalCustomers:    len(customers),
		TotalInteractions: len(interactions),
		TotalCampaigns:    len(campaigns),
		TotalProducts:     len(products),
		TotalTrends:       len(records),
		TotalMappings:     len(mappings),
		CategoryCounts:    map[string]int{},
		SentimentCounts:   map[string]int{},
		ChurnRiskCounts:   map[string]int{},
		OperatorCounts:    map[string]int{},
	}

	for _, interaction := range interactions {
		summary.CategoryCounts[interaction.Category]++
		summary.SentimentCounts[interaction.Sentiment]++
		summary.ChurnRiskCounts[interaction.ChurnRisk]++

		date := interaction.Timestamp.Format(model.DateLayout)
		if summary.DateRange.Start == "" || date < summary.DateRange.Start {
			summary.DateRange.Start = date
		}
		if date > summary.DateRange.End {
			summary.DateRange.End = date
		}
	}

	cityCounts := map[string]int{}
	for _, customer := range customers {
		summary.OperatorCounts[customer.Operator]++
		cityCounts[customer.Geography]++
	}
	summary.GeographyCounts = topN(cityCounts, 10)

	return summary
}

func (w *Writer) Summary(summary Summary) error {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	path := filepath.Join(w.outputDir, SummaryFile)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// topN keeps the n most frequent keys, breaking count ties alphabetically so
// the summary is stable across runs.
func topN(counts map[string]int, n int) map[string]int {
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, entry{key, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	top := make(map[string]int, len(entries))
	for _, e := range entries {
		top[e.key] = e.count
	}
	return top
}
