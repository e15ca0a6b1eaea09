// Package config loads generation and serving settings from config.yaml with
// environment-variable overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Server    ServerConfig    `yaml:"server"`
	Ollama    OllamaConfig    `yaml:"ollama"`
}

type GeneratorConfig struct {
	Seed         int64  `yaml:"seed"`
	Customers    int    `yaml:"customers"`
	Interactions int    `yaml:"interactions"`
	Campaigns    int    `yaml:"campaigns"`
	OutputDir    string `yaml:"output_dir"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type OllamaConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Generator: GeneratorConfig{
			Seed:         42,
			Customers:    3000,
			Interactions: 10000,
			Campaigns:    30,
			OutputDir:    "data",
		},
		Server: ServerConfig{
			Addr: ":8000",
		},
		Ollama: OllamaConfig{
			BaseURL:     "http://localhost:11434",
			Model:       "llama3.2:1b",
			Timeout:     120 * time.Second,
			Temperature: 0.7,
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("SCT_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generator.Seed = seed
		}
	}
	if v := os.Getenv("SCT_OUTPUT_DIR"); v != "" {
		cfg.Generator.OutputDir = v
	}
	if v := os.Getenv("SCT_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.Ollama.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}

	return cfg, nil
}
