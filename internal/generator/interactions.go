package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
	"github.com/Chetana10r/smart-campaign-targeting/internal/telecom"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// resolver produces the replacement text for one template placeholder, from
// either a customer attribute or a freshly sampled value.
type resolver func(e *rng.Engine, c model.Customer) string

// InteractionSynthesizer generates support interactions: it samples a
// customer, picks an issue category weighted by the customer's service type,
// fills a complaint template, and derives sentiment, churn and resolution
// fields from the result.
type InteractionSynthesizer struct {
	engine           *rng.Engine
	now              time.Time
	fiberCategories  *rng.Weighted[string]
	mobileCategories *rng.Weighted[string]
	channels         *rng.Weighted[string]
	olderResolution  *rng.Weighted[string]
	recentResolution *rng.Weighted[string]
	resolvers        map[string]resolver
}

// NewInteractionSynthesizer validates the template/resolver contract up
// front: a template naming a placeholder with no resolver is a configuration
// error caught here, not at first use.
func NewInteractionSynthesizer(engine *rng.Engine, now time.Time) (*InteractionSynthesizer, error) {
	resolvers := placeholderResolvers()
	if err := validateTemplates(telecom.Templates, resolvers); err != nil {
		return nil, err
	}

	return &InteractionSynthesizer{
		engine:           engine,
		now:              now,
		fiberCategories:  categoryTable(telecom.FiberCategoryWeights),
		mobileCategories: categoryTable(telecom.MobileCategoryWeights),
		channels: rng.MustWeighted(
			[]string{"Call", "Email", "Chat", "WhatsApp", "App", "Store Visit", "Social Media"},
			[]float64{0.35, 0.20, 0.20, 0.10, 0.08, 0.05, 0.02},
		),
		olderResolution: rng.MustWeighted(
			[]string{"resolved", "pending", "escalated", "unresolved"},
			[]float64{0.65, 0.15, 0.10, 0.10},
		),
		// Interactions within the last week are too recent to count as
		// abandoned, so "unresolved" is absent here.
		recentResolution: rng.MustWeighted(
			[]string{"resolved", "pending", "escalated"},
			[]float64{0.40, 0.45, 0.15},
		),
		resolvers: resolvers,
	}, nil
}

// categoryTable builds a weighted table over the fixed category order so map
// iteration never influences draw order.
func categoryTable(weights map[string]float64) *rng.Weighted[string] {
	values := make([]float64, len(telecom.Categories))
	for i, category := range telecom.Categories {
		values[i] = weights[category]
	}
	return rng.MustWeighted(telecom.Categories, values)
}

// validateTemplates checks that every placeholder named by any template has
// a resolver.
func validateTemplates(templates map[string][]string, resolvers map[string]resolver) error {
	categories := make([]string, 0, len(templates))
	for category := range templates {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var missing []string
	for _, category := range categories {
		for _, template := range templates[category] {
			for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
				name := match[1]
				if _, ok := resolvers[name]; !ok {
					missing = append(missing, fmt.Sprintf("%s: {%s}", category, name))
				}
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("templates reference placeholders with no resolver: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (s *InteractionSynthesizer) Generate(customers []model.Customer, n int) ([]model.Interaction, error) {
	if len(customers) == 0 {
		return nil, fmt.Errorf("cannot synthesize interactions without customers")
	}

	interactions := make([]model.Interaction, 0, n)
	for i := 0; i < n; i++ {
		interactions = append(interactions, s.generateOne(i, customers))
	}
	return interactions, nil
}

func (s *InteractionSynthesizer) generateOne(index int, customers []model.Customer) model.Interaction {
	customer := rng.Pick(s.engine, customers)

	table := s.mobileCategories
	if customer.ServiceType == "fiber" {
		table = s.fiberCategories
	}
	category := table.Pick(s.engine)

	template := rng.Pick(s.engine, telecom.Templates[category])
	text := s.fillTemplate(template, customer)

	sentiment, sentimentScore, churnRisk, churnScore := scoreSentiment(s.engine, text)

	timestamp := s.now.AddDate(0, 0, -s.engine.IntBetween(0, 90))
	status, resolutionTime := s.resolution(timestamp)

	return model.Interaction{
		InteractionID:        fmt.Sprintf("INT_%06d", index),
		CustomerID:           customer.CustomerID,
		Timestamp:            timestamp,
		Channel:              s.channels.Pick(s.engine),
		Text:                 text,
		Category:             category,
		Sentiment:            sentiment,
		SentimentScore:       sentimentScore,
		ResolutionStatus:     status,
		ResolutionTimeHours:  resolutionTime,
		AgentID:              fmt.Sprintf("AGT_%03d", s.engine.IntBetween(1, 100)),
		AgentName:            personName(s.engine),
		Geography:            customer.Geography,
		Region:               customer.Region,
		ChurnRisk:            churnRisk,
		ChurnScore:           churnScore,
		EscalationCount:      rng.Pick(s.engine, []int{0, 0, 0, 1, 1, 2, 3}),
		FollowUpRequired:     s.engine.Chance(0.5),
		DurationMinutes:      s.engine.IntBetween(2, 45),
		CustomerTenureMonths: customer.TenureMonths,
		PlanValue:            customer.PlanValue,
		Operator:             customer.Operator,
		ServiceType:          customer.ServiceType,
	}
}

// fillTemplate resolves placeholders in order of appearance. Resolvers for
// every name were verified at construction, so a miss here is unreachable.
func (s *InteractionSynthesizer) fillTemplate(template string, customer model.Customer) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		return s.resolvers[name](s.engine, customer)
	})
}

// resolution draws the status from the recency-dependent table;
// resolution_time_hours is set only for resolved interactions.
func (s *InteractionSynthesizer) resolution(timestamp time.Time) (string, *int) {
	table := s.recentResolution
	if timestamp.Before(s.now.AddDate(0, 0, -7)) {
		table = s.olderResolution
	}

	status := table.Pick(s.engine)
	if status != "resolved" {
		return status, nil
	}
	hours := rng.Pick(s.engine, []int{2, 4, 8, 24, 48, 72})
	return status, &hours
}

// placeholderResolvers declares the full placeholder schema: each name is
// either derived from a customer field or sampled from a fixed distribution.
// Template authors must keep this set and the template placeholder set in
// lock-step; validateTemplates enforces it at startup.
func placeholderResolvers() map[string]resolver {
	fromInt := func(v int) string { return strconv.Itoa(v) }

	return map[string]resolver{
		"operator": func(_ *rng.Engine, c model.Customer) string { return c.Operator },
		"city":     func(_ *rng.Engine, c model.Customer) string { return c.Geography },
		"area":     func(_ *rng.Engine, c model.Customer) string { return c.Geography },
		"pincode":  func(_ *rng.Engine, c model.Customer) string { return strconv.Itoa(c.Pincode) },

		"days":  func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(1, 7)) },
		"times": func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(2, 5)) },
		"frequency": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"5", "10", "15", "few"})
		},
		"event": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"road construction", "heavy rain", "building work", "cable theft"})
		},
		"speed":      func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(10, 40)) },
		"plan_speed": func(e *rng.Engine, _ model.Customer) string { return fromInt(rng.Pick(e, []int{50, 100, 200, 300, 500})) },
		"actual_speed": func(e *rng.Engine, _ model.Customer) string {
			return fromInt(e.IntBetween(15, 80))
		},
		"upload_speed":  func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(5, 30)) },
		"morning_speed": func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(80, 150)) },
		"evening_speed": func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(20, 60)) },
		"light_color": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"red", "orange", "blinking"})
		},
		"time": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"7-10 PM", "evening", "night", "peak hours"})
		},

		"old_bill":     func(_ *rng.Engine, c model.Customer) string { return strconv.Itoa(c.PlanValue) },
		"plan_price":   func(_ *rng.Engine, c model.Customer) string { return strconv.Itoa(c.PlanValue) },
		"correct":      func(_ *rng.Engine, c model.Customer) string { return strconv.Itoa(c.PlanValue) },
		"current_bill": func(_ *rng.Engine, c model.Customer) string { return strconv.Itoa(c.PlanValue) },
		"new_bill": func(e *rng.Engine, c model.Customer) string {
			return fromInt(c.PlanValue + e.IntBetween(200, 800))
		},
		"actual_bill": func(e *rng.Engine, c model.Customer) string {
			return fromInt(c.PlanValue + e.IntBetween(100, 500))
		},
		"charged": func(e *rng.Engine, c model.Customer) string {
			return fromInt(c.PlanValue + e.IntBetween(50, 200))
		},
		"target_plan": func(e *rng.Engine, c model.Customer) string {
			target := c.PlanValue - e.IntBetween(200, 500)
			if target < 299 {
				target = 299
			}
			return fromInt(target)
		},
		"competitor_price": func(e *rng.Engine, c model.Customer) string {
			return fromInt(c.PlanValue - e.IntBetween(100, 300))
		},
		"extra":    func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(100, 500)) },
		"amount":   func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(500, 2000)) },
		"cashback": func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(50, 500)) },
		"budget":   func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(300, 700)) },
		"date": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"last week", "3 days ago", "yesterday", "5th Nov"})
		},

		"competitor":   func(e *rng.Engine, c model.Customer) string { return otherOperator(e, c.Operator) },
		"old_operator": func(e *rng.Engine, c model.Customer) string { return otherOperator(e, c.Operator) },

		"channel_count": func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(10, 50)) },
		"error_code": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"E-404", "E-16", "E-8", "E-100", "NO SIGNAL"})
		},
		"route": func(e *rng.Engine, _ model.Customer) string {
			return rng.Pick(e, []string{"Mumbai-Pune highway", "Delhi-Jaipur route", "office commute"})
		},
		"current_plan": func(e *rng.Engine, _ model.Customer) string {
			return fmt.Sprintf("%dMbps", rng.Pick(e, []int{50, 100, 200}))
		},
		"tenure": func(_ *rng.Engine, c model.Customer) string {
			years := c.TenureMonths / 12
			if years == 0 {
				years = 1
			}
			return fromInt(years)
		},
		"months": func(e *rng.Engine, _ model.Customer) string { return fromInt(e.IntBetween(3, 12)) },
	}
}

func otherOperator(e *rng.Engine, own string) string {
	others := make([]string, 0, len(telecom.Operators)-1)
	for _, op := range telecom.Operators {
		if op != own {
			others = append(others, op)
		}
	}
	return rng.Pick(e, others)
}
