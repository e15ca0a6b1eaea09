package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Generator.Seed != 42 {
		t.Errorf("default seed = %d, want 42", cfg.Generator.Seed)
	}
	if cfg.Generator.Customers != 3000 || cfg.Generator.Interactions != 10000 {
		t.Errorf("default sizes = %d/%d", cfg.Generator.Customers, cfg.Generator.Interactions)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("default addr = %s", cfg.Server.Addr)
	}
	if cfg.Ollama.Timeout != 120*time.Second {
		t.Errorf("default timeout = %s", cfg.Ollama.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
generator:
  seed: 7
  customers: 100
  output_dir: /tmp/dataset
server:
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.Seed != 7 || cfg.Generator.Customers != 100 {
		t.Errorf("generator = %+v", cfg.Generator)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %s", cfg.Server.Addr)
	}
	// Values absent from the file keep their defaults.
	if cfg.Generator.Interactions != 10000 {
		t.Errorf("interactions = %d, want default 10000", cfg.Generator.Interactions)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCT_SEED", "99")
	t.Setenv("SCT_OUTPUT_DIR", "/tmp/override")
	t.Setenv("OLLAMA_MODEL", "llama3.2:3b")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.Seed != 99 {
		t.Errorf("seed = %d, want env override 99", cfg.Generator.Seed)
	}
	if cfg.Generator.OutputDir != "/tmp/override" {
		t.Errorf("output dir = %s", cfg.Generator.OutputDir)
	}
	if cfg.Ollama.Model != "llama3.2:3b" {
		t.Errorf("model = %s", cfg.Ollama.Model)
	}
}
