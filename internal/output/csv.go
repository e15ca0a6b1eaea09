// Package output writes the generated tables as flat CSV files plus a
// run-level JSON summary.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
)

const (
	CustomersFile    = "customer_profiles.csv"
	InteractionsFile = "customer_interactions.csv"
	CampaignsFile    = "campaign_history.csv"
	ProductsFile     = "product_catalog.csv"
	TrendsFile       = "issue_trends.csv"
	MappingsFile     = "campaign_customer_mapping.csv"
	SummaryFile      = "dataset_summary.json"
)

// Writer persists the dataset under one output directory.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

func (w *Writer) Customers(customers []model.Customer) error {
	return writeTable(filepath.Join(w.outputDir, CustomersFile), customers)
}

func (w *Writer) Interactions(interactions []model.Interaction) error {
	return writeTable(filepath.Join(w.outputDir, InteractionsFile), interactions)
}

func (w *Writer) Campaigns(campaigns []model.Campaign) error {
	return writeTable(filepath.Join(w.outputDir, CampaignsFile), campaigns)
}

func (w *Writer) Products(products []model.Product) error {
	return writeTable(filepath.Join(w.outputDir, ProductsFile), products)
}

func (w *Writer) Trends(records []model.TrendRecord) error {
	return writeTable(filepath.Join(w.outputDir, TrendsFile), records)
}

func (w *Writer) Mappings(mappings []model.Mapping) error {
	return writeTable(filepath.Join(w.outputDir, MappingsFile), mappings)
}

type tableRow interface {
	Header() []string
	Record() []string
}

func writeTable[T tableRow](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	var zero T
	if err := writer.Write(zero.Header()); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
