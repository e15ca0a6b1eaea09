// Package generator implements the stochastic pipeline that synthesizes the
// customer, interaction, campaign, product and outreach tables. All
// generators draw from one shared rng.Engine in stage order, so a fixed seed
// and reference time reproduce a run byte for byte.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
	"github.com/Chetana10r/smart-campaign-targeting/internal/telecom"
)

const customerIDBase = 10000

// CustomerGenerator produces the customer population every other generator
// samples from.
type CustomerGenerator struct {
	engine        *rng.Engine
	now           time.Time
	serviceTypes  *rng.Weighted[string]
	tenureMonths  *rng.Weighted[int]
	customerTypes *rng.Weighted[string]
}

func NewCustomerGenerator(engine *rng.Engine, now time.Time) *CustomerGenerator {
	return &CustomerGenerator{
		engine:        engine,
		now:           now,
		serviceTypes:  rng.MustWeighted(telecom.ServiceTypes, []float64{0.3, 0.3, 0.4}),
		tenureMonths:  tenureTable(),
		customerTypes: rng.MustWeighted([]string{"Individual", "SME", "Enterprise"}, []float64{0.8, 0.15, 0.05}),
	}
}

// tenureTable skews tenure toward shorter subscriptions: months 1-12 are
// five times as likely as months 85-120.
func tenureTable() *rng.Weighted[int] {
	months := make([]int, 0, 120)
	weights := make([]float64, 0, 120)
	for m := 1; m <= 120; m++ {
		months = append(months, m)
		switch {
		case m <= 12:
			weights = append(weights, 10)
		case m <= 24:
			weights = append(weights, 8)
		case m <= 48:
			weights = append(weights, 6)
		case m <= 84:
			weights = append(weights, 4)
		default:
			weights = append(weights, 2)
		}
	}
	return rng.MustWeighted(months, weights)
}

func (g *CustomerGenerator) Generate(n int) []model.Customer {
	customers := make([]model.Customer, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, g.generateOne(i))
	}
	return customers
}

func (g *CustomerGenerator) generateOne(index int) model.Customer {
	name := personName(g.engine)
	operator := rng.Pick(g.engine, telecom.Operators)
	city := rng.Pick(g.engine, telecom.Cities)
	serviceType := g.serviceTypes.Pick(g.engine)
	planValue := rng.Pick(g.engine, planValues(operator, serviceType))
	tenure := g.tenureMonths.Pick(g.engine)

	return model.Customer{
		CustomerID:         fmt.Sprintf("CUST_%d", customerIDBase+index),
		Name:               name,
		Email:              g.email(name),
		Phone:              fmt.Sprintf("+91-%d", g.engine.IntBetween(7000000000, 9999999999)),
		Operator:           operator,
		AccountCreated:     g.now.AddDate(0, 0, -tenure*30),
		TenureMonths:       tenure,
		Segment:            SegmentFor(planValue),
		ServiceType:        serviceType,
		CurrentPlan:        fmt.Sprintf("%s %s %d", operator, titleCase(serviceType), planValue),
		PlanValue:          planValue,
		ProductsSubscribed: rng.Pick(g.engine, telecom.ProductBundles),
		AutoPayEnabled:     g.engine.Chance(0.5),
		PaymentMethod:      rng.Pick(g.engine, telecom.PaymentMethods),
		LastPaymentDate:    g.now.AddDate(0, 0, -g.engine.IntBetween(1, 30)),
		OutstandingBalance: rng.Pick(g.engine, []int{0, 0, 0, planValue, planValue * 2}),
		LifetimeValue:      planValue * tenure,
		Geography:          city,
		Region:             telecom.RegionFor(city),
		Pincode:            g.engine.IntBetween(400001, 600100),
		AgeGroup:           rng.Pick(g.engine, telecom.AgeGroups),
		CustomerType:       g.customerTypes.Pick(g.engine),
	}
}

// SegmentFor derives the customer tier strictly from plan value bands.
func SegmentFor(planValue int) string {
	switch {
	case planValue >= 1500:
		return "Premium"
	case planValue >= 700:
		return "Standard"
	default:
		return "Basic"
	}
}

func planValues(operator, serviceType string) []int {
	if byService, ok := telecom.Plans[strings.ToLower(operator)]; ok {
		if values, ok := byService[serviceType]; ok {
			return values
		}
	}
	return telecom.FallbackPlanValues
}

func personName(e *rng.Engine) string {
	return rng.Pick(e, telecom.FirstNames) + " " + rng.Pick(e, telecom.LastNames)
}

func (g *CustomerGenerator) email(name string) string {
	local := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	return fmt.Sprintf("%s%d@email.com", local, g.engine.IntBetween(1, 999))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
