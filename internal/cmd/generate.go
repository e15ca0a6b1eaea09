package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Chetana10r/smart-campaign-targeting/internal/config"
	"github.com/Chetana10r/smart-campaign-targeting/internal/generator"
	"github.com/Chetana10r/smart-campaign-targeting/internal/model"
	"github.com/Chetana10r/smart-campaign-targeting/internal/output"
	"github.com/Chetana10r/smart-campaign-targeting/internal/rng"
	"github.com/Chetana10r/smart-campaign-targeting/internal/trends"
)

var (
	generateConfig       string
	generateSeed         int64
	generateCustomers    int
	generateInteractions int
	generateCampaigns    int
	generateOutput       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic telecom dataset",
	Long: `Generate the full synthetic dataset: customer profiles, support
interactions, campaign history, the product catalog, weekly issue trends and
per-customer campaign outreach mappings, written as CSV files plus a JSON
summary. A fixed seed reproduces the same dataset.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "config.yaml", "Path to the config file")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 = use config value)")
	generateCmd.Flags().IntVar(&generateCustomers, "customers", 0, "Number of customers to generate (0 = use config value)")
	generateCmd.Flags().IntVar(&generateInteractions, "interactions", 0, "Number of interactions to generate (0 = use config value)")
	generateCmd.Flags().IntVar(&generateCampaigns, "campaigns", 0, "Number of campaigns to generate (0 = use config value)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: config value)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(generateConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyGenerateFlags(&cfg.Generator)

	engine := rng.New(cfg.Generator.Seed)
	now := time.Now()

	fmt.Printf("Generating dataset with seed %d\n", cfg.Generator.Seed)
	fmt.Printf("Output directory: %s\n", cfg.Generator.OutputDir)

	customers := generator.NewCustomerGenerator(engine, now).Generate(cfg.Generator.Customers)
	fmt.Printf("Generated %d customer profiles\n", len(customers))

	synthesizer, err := generator.NewInteractionSynthesizer(engine, now)
	if err != nil {
		return fmt.Errorf("failed to initialize interaction synthesizer: %w", err)
	}
	interactions, err := synthesizer.Generate(customers, cfg.Generator.Interactions)
	if err != nil {
		return fmt.Errorf("failed to generate interactions: %w", err)
	}
	fmt.Printf("Generated %d interactions\n", len(interactions))

	campaigns := generator.NewCampaignGenerator(engine, now).Generate(cfg.Generator.Campaigns)
	fmt.Printf("Generated %d campaigns\n", len(campaigns))

	products := generator.NewProductCatalogGenerator(engine).Generate()
	fmt.Printf("Generated %d products\n", len(products))

	records := trends.Aggregate(interactions)
	fmt.Printf("Aggregated %d weekly trend records\n", len(records))

	mapper := generator.NewCampaignCustomerMapper(engine)
	var mappings []model.Mapping
	for _, campaign := range campaigns {
		mappings = append(mappings, mapper.Map(campaign, customers, interactions)...)
	}
	fmt.Printf("Mapped %d campaign-customer pairs\n", len(mappings))

	writer := output.NewWriter(cfg.Generator.OutputDir)
	writes := []struct {
		name string
		fn   func() error
	}{
		{output.CustomersFile, func() error { return writer.Customers(customers) }},
		{output.InteractionsFile, func() error { return writer.Interactions(interactions) }},
		{output.CampaignsFile, func() error { return writer.Campaigns(campaigns) }},
		{output.ProductsFile, func() error { return writer.Products(products) }},
		{output.TrendsFile, func() error { return writer.Trends(records) }},
		{output.MappingsFile, func() error { return writer.Mappings(mappings) }},
	}
	for _, w := range writes {
		if err := w.fn(); err != nil {
			return err
		}
		fmt.Printf("  - %s\n", w.name)
	}

	summary := output.BuildSummary(uuid.NewString(), now, customers, interactions, campaigns, products, records, mappings)
	if err := writer.Summary(summary); err != nil {
		return err
	}
	fmt.Printf("  - %s\n", output.SummaryFile)

	fmt.Printf("Done. Run %q covers %s to %s\n", summary.RunID, summary.DateRange.Start, summary.DateRange.End)
	return nil
}

func applyGenerateFlags(cfg *config.GeneratorConfig) {
	if generateSeed != 0 {
		cfg.Seed = generateSeed
	}
	if generateCustomers > 0 {
		cfg.Customers = generateCustomers
	}
	if generateInteractions > 0 {
		cfg.Interactions = generateInteractions
	}
	if generateCampaigns > 0 {
		cfg.Campaigns = generateCampaigns
	}
	if generateOutput != "" {
		cfg.OutputDir = generateOutput
	}
}
