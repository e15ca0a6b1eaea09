package generator

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
	"github.com/Chetana10r/smart-campaign-targeting/internal/telecom"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSegmentFor(t *testing.T) {
	tests := []struct {
		planValue int
		want      string
	}{
		{2999, "Premium"},
		{1500, "Premium"},
		{1499, "Standard"},
		{900, "Standard"},
		{700, "Standard"},
		{699, "Basic"},
		{299, "Basic"},
	}

	for _, tt := range tests {
		if got := SegmentFor(tt.planValue); got != tt.want {
			t.Errorf("SegmentFor(%d) = %s, want %s", tt.planValue, got, tt.want)
		}
	}
}

func TestCustomerGeneratorFields(t *testing.T) {
	customers := NewCustomerGenerator(rng.New(7), testNow).Generate(200)
	if len(customers) != 200 {
		t.Fatalf("generated %d customers, want 200", len(customers))
	}

	if customers[0].CustomerID != "CUST_10000" {
		t.Errorf("first customer ID = %s, want CUST_10000", customers[0].CustomerID)
	}

	for _, c := range customers {
		if c.TenureMonths < 1 || c.TenureMonths > 120 {
			t.Errorf("%s: tenure %d out of range [1, 120]", c.CustomerID, c.TenureMonths)
		}
		if c.LifetimeValue != c.PlanValue*c.TenureMonths {
			t.Errorf("%s: lifetime value %d != plan %d * tenure %d",
				c.CustomerID, c.LifetimeValue, c.PlanValue, c.TenureMonths)
		}
		if c.Segment != SegmentFor(c.PlanValue) {
			t.Errorf("%s: segment %s does not match plan value %d", c.CustomerID, c.Segment, c.PlanValue)
		}
		if c.Region != telecom.RegionFor(c.Geography) {
			t.Errorf("%s: region %s does not match city %s", c.CustomerID, c.Region, c.Geography)
		}
		if !containsValue(planValues(c.Operator, c.ServiceType), c.PlanValue) {
			t.Errorf("%s: plan value %d not in %s %s price list",
				c.CustomerID, c.PlanValue, c.Operator, c.ServiceType)
		}
		if !strings.HasPrefix(c.Phone, "+91-") {
			t.Errorf("%s: phone %s missing country prefix", c.CustomerID, c.Phone)
		}
	}
}

func TestCustomerGeneratorDeterminism(t *testing.T) {
	first := NewCustomerGenerator(rng.New(42), testNow).Generate(50)
	second := NewCustomerGenerator(rng.New(42), testNow).Generate(50)

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed and reference time should reproduce identical customers")
	}

	different := NewCustomerGenerator(rng.New(43), testNow).Generate(50)
	if reflect.DeepEqual(first, different) {
		t.Error("different seeds should produce different customers")
	}
}

func TestPlanValuesFallback(t *testing.T) {
	values := planValues("UnknownTel", "fiber")
	if !reflect.DeepEqual(values, telecom.FallbackPlanValues) {
		t.Errorf("unknown operator should fall back to %v, got %v", telecom.FallbackPlanValues, values)
	}
}

func containsValue(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
