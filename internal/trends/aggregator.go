// Package trends rolls interactions up into weekly issue-trend records with
// week-over-week change and severity classification.
package trends

import (
	"math"
	"sort"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
)

type groupKey struct {
	week      string
	category  string
	geography string
}

// Aggregate groups interactions by (week, category, geography), computes
// issue counts and mean churn scores, then walks each (category, geography)
// series in week order deriving change percentage, trend direction and
// severity. The first observed week of a series has zero change by
// definition.
func Aggregate(interactions []model.Interaction) []model.TrendRecord {
	counts := make(map[groupKey]int)
	churnSums := make(map[groupKey]float64)

	for _, interaction := range interactions {
		key := groupKey{
			week:      interaction.Week(),
			category:  interaction.Category,
			geography: interaction.Geography,
		}
		counts[key]++
		churnSums[key] += interaction.ChurnScore
	}

	keys := make([]groupKey, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		if keys[i].geography != keys[j].geography {
			return keys[i].geography < keys[j].geography
		}
		return keys[i].week < keys[j].week
	})

	records := make([]model.TrendRecord, 0, len(keys))
	var prev *groupKey
	prevCount := 0

	for i := range keys {
		key := keys[i]
		count := counts[key]
		avgChurn := churnSums[key] / float64(count)

		change := 0.0
		if prev != nil && prev.category == key.category && prev.geography == key.geography && prevCount > 0 {
			change = round2(float64(count-prevCount) / float64(prevCount) * 100)
		}

		records = append(records, model.TrendRecord{
			Week:             key.week,
			Category:         key.category,
			Geography:        key.geography,
			IssueCount:       count,
			AvgChurnScore:    avgChurn,
			ChangePercentage: change,
			Trend:            classifyTrend(change),
			Severity:         classifySeverity(count, avgChurn),
		})

		prev = &keys[i]
		prevCount = count
	}

	return records
}

func classifyTrend(changePercentage float64) string {
	switch {
	case changePercentage > 5:
		return "increasing"
	case changePercentage < -5:
		return "decreasing"
	default:
		return "stable"
	}
}

// classifySeverity is a priority-ordered ladder: volume and churn together
// escalate, volume alone caps at medium.
func classifySeverity(count int, avgChurnScore float64) string {
	switch {
	case count > 50 && avgChurnScore > 0.7:
		return "critical"
	case count > 30 && avgChurnScore > 0.5:
		return "high"
	case count > 15:
		return "medium"
	default:
		return "low"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
