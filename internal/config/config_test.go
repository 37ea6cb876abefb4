package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory afterwards (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func writeConfig(t *testing.T, dir, env, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, env+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "test", `
http:
  port: 9090
logging:
  level: debug
search:
  title_weight: 4
suggest:
  dictionary: [engel, garcia]
seed:
  items:
    - id: one
      title: First
      tags: [a, b]
`)
	chdir(t, dir)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("Port = %d", cfg.HTTP.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Search.TitleWeight != 4 {
		t.Errorf("TitleWeight = %g", cfg.Search.TitleWeight)
	}
	// Untouched fields pick up defaults.
	if cfg.Search.TagsWeight != 2.5 || cfg.Search.FuzzyThreshold != 0.7 {
		t.Errorf("defaults not applied: %+v", cfg.Search)
	}
	if cfg.Suggest.CorrectionMin != 0.6 || cfg.Suggest.CorrectionMax != 0.95 {
		t.Errorf("band defaults not applied: %+v", cfg.Suggest)
	}
	if len(cfg.Seed.Items) != 1 || cfg.Seed.Items[0].ID != "one" {
		t.Errorf("Seed = %+v", cfg.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("nope"); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestLoadEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "test", `
http:
  port: ${SIFT_TEST_PORT}
`)
	chdir(t, dir)
	t.Setenv("SIFT_TEST_PORT", "7070")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.HTTP.Port)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{HTTP: HTTPConfig{Port: 8080}}
	valid.ApplyDefaults()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.HTTP.Port = 0 }},
		{"huge port", func(c *Config) { c.HTTP.Port = 70000 }},
		{"fuzzy threshold one", func(c *Config) { c.Search.FuzzyThreshold = 1 }},
		{"band max above one", func(c *Config) { c.Suggest.CorrectionMax = 1.2 }},
		{"inverted band", func(c *Config) { c.Suggest.CorrectionMin = 0.97 }},
		{"seed item without id", func(c *Config) {
			c.Seed.Items = []SeedItem{{Title: "No ID"}}
		}},
		{"seed item without title", func(c *Config) {
			c.Seed.Items = []SeedItem{{ID: "no-title"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}

func TestSeedItemsFromFile(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	seed := `
- id: filed
  title: From File
`
	if err := os.WriteFile(seedPath, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cfg := Config{Seed: SeedConfig{
		File:  seedPath,
		Items: []SeedItem{{ID: "inline", Title: "Inline"}},
	}}
	items, err := cfg.SeedItems()
	if err != nil {
		t.Fatalf("SeedItems: %v", err)
	}
	if len(items) != 2 || items[0].ID != "filed" || items[1].ID != "inline" {
		t.Errorf("items = %+v", items)
	}
}

func TestSeedItemsMissingFile(t *testing.T) {
	cfg := Config{Seed: SeedConfig{File: filepath.Join(t.TempDir(), "absent.yaml")}}
	if _, err := cfg.SeedItems(); err == nil {
		t.Error("missing seed file accepted")
	}
}
