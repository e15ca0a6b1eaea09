package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chetana10r/smart-campaign-targeting/internal/ai"
	"github.com/Chetana10r/smart-campaign-targeting/internal/config"
	"github.com/Chetana10r/smart-campaign-targeting/internal/db"
	"github.com/Chetana10r/smart-campaign-targeting/internal/server"
)

var (
	serveConfig string
	serveData   string
	serveAddr   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve analytics over a generated dataset",
	Long: `Serve the campaign targeting API over a previously generated dataset
directory. The CSV tables are mounted as in-memory DuckDB views; AI-backed
endpoints call a local Ollama instance and fall back to canned payloads when
it is unreachable.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "config.yaml", "Path to the config file")
	serveCmd.Flags().StringVarP(&serveData, "data", "d", "", "Dataset directory (default: generator output dir)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: config value)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataDir := cfg.Generator.OutputDir
	if serveData != "" {
		dataDir = serveData
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	database, err := db.Open(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer database.Close()

	analyzer := ai.NewAnalyzer(ai.Config{
		BaseURL:     cfg.Ollama.BaseURL,
		Model:       cfg.Ollama.Model,
		Temperature: cfg.Ollama.Temperature,
		Timeout:     cfg.Ollama.Timeout,
	})

	return server.New(database, analyzer).Run(addr)
}
