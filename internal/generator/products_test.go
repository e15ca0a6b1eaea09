package generator

import (
	"reflect"
	"testing"

	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
)

func TestProductCatalog(t *testing.T) {
	products := NewProductCatalogGenerator(rng.New(4)).Generate()
	if len(products) != 30 {
		t.Fatalf("catalog has %d products, want 30", len(products))
	}

	if products[0].ProductID != "PROD_001" {
		t.Errorf("first product ID = %s, want PROD_001", products[0].ProductID)
	}

	for _, p := range products {
		if len(p.TargetIssues) == 0 {
			t.Errorf("%s: no target issues", p.ProductID)
		}
		if p.AvgRating < 3.5 || p.AvgRating > 4.9 {
			t.Errorf("%s: rating %.1f outside [3.5, 4.9]", p.ProductID, p.AvgRating)
		}
		if p.PopularityScore < 1 || p.PopularityScore > 100 {
			t.Errorf("%s: popularity %d outside [1, 100]", p.ProductID, p.PopularityScore)
		}
	}
}

func TestIssuesAddressedBy(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"100Mbps Standard Fiber", []string{"internet_speed", "internet_connectivity"}},
		{"WiFi 6 Router", []string{"internet_connectivity", "network_quality"}},
		{"Premium DTH Pack", []string{"tv_channels", "tv_technical"}},
		{"OTT Bundle - Netflix", []string{"customer_retention", "product_inquiry"}},
		{"Caller Tune Service", []string{"product_inquiry"}},
	}

	for _, tt := range tests {
		if got := IssuesAddressedBy(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("IssuesAddressedBy(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
