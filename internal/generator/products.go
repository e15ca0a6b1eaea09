package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
)

type catalogEntry struct {
	name        string
	price       int
	description string
}

// productCatalog is the fixed product taxonomy; only stock, popularity and
// rating fields are randomized per run.
var productCatalog = []struct {
	category string
	entries  []catalogEntry
}{
	{"Internet Plans", []catalogEntry{
		{"50Mbps Basic Fiber", 699, "Fiber broadband with 50Mbps speed, unlimited data"},
		{"100Mbps Standard Fiber", 999, "Fiber broadband with 100Mbps speed, unlimited data"},
		{"200Mbps Premium Fiber", 1499, "High-speed fiber with 200Mbps, OTT subscription included"},
		{"300Mbps Ultra Fiber", 2499, "Ultra-fast fiber broadband with 300Mbps symmetrical speed"},
		{"500Mbps Gig Fiber", 3999, "Gigabit-ready fiber with 500Mbps and priority support"},
		{"Prepaid 1.5GB/Day", 299, "84 days validity, 1.5GB data per day, unlimited calls"},
		{"Prepaid 2GB/Day", 399, "84 days validity, 2GB data per day, unlimited calls"},
		{"Postpaid Unlimited", 599, "Unlimited calls, 50GB data, OTT subscription"},
	}},
	{"Hardware", []catalogEntry{
		{"WiFi 6 Router", 2999, "Dual-band WiFi 6 router with 4 antennas, covers 2000 sq ft"},
		{"WiFi Range Extender", 1499, "Extends WiFi coverage up to 1500 sq ft"},
		{"Mesh WiFi System (2-pack)", 8999, "Whole home mesh WiFi covering 4000 sq ft"},
		{"ONT Fiber Device", 1999, "Optical Network Terminal for fiber connection"},
		{"4G WiFi Dongle", 999, "Portable 4G WiFi hotspot, works with all networks"},
		{"WiFi Booster", 1299, "Signal booster for better indoor coverage"},
	}},
	{"TV Services", []catalogEntry{
		{"Basic DTH Pack", 299, "150+ SD channels, all free-to-air channels"},
		{"Premium DTH Pack", 599, "250+ channels including HD, regional packs"},
		{"Sports Pack", 399, "All sports channels including Star Sports, Sony Ten"},
		{"Movies Pack", 299, "Premium movie channels including HBO, Sony Pix"},
		{"Regional Language Pack", 199, "Regional channels - Tamil/Telugu/Bengali/Marathi"},
		{"HD Set-Top Box", 1500, "HD quality set-top box with recording feature"},
	}},
	{"Value Added Services", []catalogEntry{
		{"International Roaming - USA", 2999, "30 days validity, 10GB data, unlimited calls"},
		{"International Roaming - Europe", 3499, "30 days validity, 15GB data, unlimited calls"},
		{"Caller Tune Service", 49, "Monthly subscription for caller tunes"},
		{"OTT Bundle - Netflix", 199, "Netflix Basic bundled with your plan"},
		{"OTT Bundle - Amazon Prime", 149, "Amazon Prime Video subscription"},
		{"Cloud Storage 100GB", 99, "100GB cloud storage for photos and files"},
	}},
	{"Upgrades", []catalogEntry{
		{"Speed Upgrade to 200Mbps", 500, "One-time upgrade fee to 200Mbps plan"},
		{"Speed Upgrade to 300Mbps", 1000, "One-time upgrade fee to 300Mbps plan"},
		{"Add TV to Internet", 299, "Bundle TV service with existing internet"},
		{"Add Phone Line", 199, "Add landline phone service to bundle"},
	}},
}

// ProductCatalogGenerator emits the static catalog with each product mapped
// to the issue categories it addresses.
type ProductCatalogGenerator struct {
	engine *rng.Engine
	stock  *rng.Weighted[string]
}

func NewProductCatalogGenerator(engine *rng.Engine) *ProductCatalogGenerator {
	return &ProductCatalogGenerator{
		engine: engine,
		stock: rng.MustWeighted(
			[]string{"In Stock", "Low Stock", "Out of Stock"},
			[]float64{0.8, 0.15, 0.05},
		),
	}
}

func (g *ProductCatalogGenerator) Generate() []model.Product {
	var products []model.Product

	id := 1
	for _, group := range productCatalog {
		for _, entry := range group.entries {
			productType := "Hardware"
			if strings.Contains(entry.name, "Pack") || strings.Contains(entry.name, "Plan") {
				productType = "Service"
			}

			products = append(products, model.Product{
				ProductID:        fmt.Sprintf("PROD_%03d", id),
				Name:             entry.name,
				Category:         group.category,
				Type:             productType,
				Price:            entry.price,
				Description:      entry.description,
				TargetIssues:     IssuesAddressedBy(entry.name),
				SuitableForChurn: g.engine.Chance(0.5),
				StockStatus:      g.stock.Pick(g.engine),
				PopularityScore:  g.engine.IntBetween(1, 100),
				AvgRating:        round1(g.engine.FloatBetween(3.5, 4.9)),
			})
			id++
		}
	}
	return products
}

// IssuesAddressedBy maps a product to issue categories via name-substring
// rules, evaluated top-down.
func IssuesAddressedBy(name string) []string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "speed") || strings.Contains(lower, "mbps"):
		return []string{"internet_speed", "internet_connectivity"}
	case strings.Contains(lower, "wifi") || strings.Contains(lower, "router") || strings.Contains(lower, "booster"):
		return []string{"internet_connectivity", "network_quality"}
	case strings.Contains(lower, "tv") || strings.Contains(lower, "dth") || strings.Contains(lower, "channels"):
		return []string{"tv_channels", "tv_technical"}
	case strings.Contains(lower, "upgrade"):
		return []string{"internet_speed", "product_inquiry"}
	case strings.Contains(lower, "ott"):
		return []string{"customer_retention", "product_inquiry"}
	default:
		return []string{"product_inquiry"}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
