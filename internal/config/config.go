package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the sift server configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Search  SearchConfig  `yaml:"search"`
	Suggest SuggestConfig `yaml:"suggest"`
	Seed    SeedConfig    `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// SearchConfig holds field weights and scoring thresholds.
type SearchConfig struct {
	TitleWeight       float64 `yaml:"title_weight"`
	DescriptionWeight float64 `yaml:"description_weight"`
	ContentWeight     float64 `yaml:"content_weight"`
	TagsWeight        float64 `yaml:"tags_weight"`
	CategoryWeight    float64 `yaml:"category_weight"`
	FuzzyThreshold    float64 `yaml:"fuzzy_threshold"`
}

// SuggestConfig holds the suggestion dictionaries and the typo-correction
// similarity band.
type SuggestConfig struct {
	Dictionary    []string `yaml:"dictionary"`
	Completions   []string `yaml:"completions"`
	Popular       []string `yaml:"popular"`
	CorrectionMin float64  `yaml:"correction_min"`
	CorrectionMax float64  `yaml:"correction_max"`
}

// SeedConfig holds the initial corpus loaded at startup. Items may be
// declared inline or loaded from a separate YAML file; inline items win on
// duplicate ids (both are simply appended, inline first).
type SeedConfig struct {
	Items []SeedItem `yaml:"items"`
	File  string     `yaml:"file"`
}

// SeedItem is one corpus document in seed YAML form.
type SeedItem struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description"`
	Content      string         `yaml:"content"`
	Category     string         `yaml:"category"`
	Tags         []string       `yaml:"tags"`
	URL          string         `yaml:"url"`
	Metadata     map[string]any `yaml:"metadata"`
	SearchWeight float64        `yaml:"search_weight"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// SeedItems returns the full seed corpus: file items first, then inline.
func (c *Config) SeedItems() ([]SeedItem, error) {
	var items []SeedItem

	if c.Seed.File != "" {
		data, err := os.ReadFile(filepath.Clean(c.Seed.File))
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", c.Seed.File, err)
		}
		var fromFile []SeedItem
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("failed to parse seed file %s: %w", c.Seed.File, err)
		}
		items = append(items, fromFile...)
	}

	items = append(items, c.Seed.Items...)
	return items, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Search.TitleWeight <= 0 {
		c.Search.TitleWeight = 3
	}
	if c.Search.DescriptionWeight <= 0 {
		c.Search.DescriptionWeight = 2
	}
	if c.Search.ContentWeight <= 0 {
		c.Search.ContentWeight = 1
	}
	if c.Search.TagsWeight <= 0 {
		c.Search.TagsWeight = 2.5
	}
	if c.Search.CategoryWeight <= 0 {
		c.Search.CategoryWeight = 1.5
	}
	if c.Search.FuzzyThreshold <= 0 {
		c.Search.FuzzyThreshold = 0.7
	}
	if c.Suggest.CorrectionMin <= 0 {
		c.Suggest.CorrectionMin = 0.6
	}
	if c.Suggest.CorrectionMax <= 0 {
		c.Suggest.CorrectionMax = 0.95
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Search.FuzzyThreshold >= 1 {
		return fmt.Errorf("search.fuzzy_threshold must be below 1, got %g", c.Search.FuzzyThreshold)
	}
	if c.Suggest.CorrectionMax > 1 {
		return fmt.Errorf("suggest.correction_max must be at most 1, got %g", c.Suggest.CorrectionMax)
	}
	if c.Suggest.CorrectionMin >= c.Suggest.CorrectionMax {
		return fmt.Errorf("suggest.correction_min %g must be below correction_max %g",
			c.Suggest.CorrectionMin, c.Suggest.CorrectionMax)
	}
	for i, it := range c.Seed.Items {
		if it.ID == "" || it.Title == "" {
			return fmt.Errorf("seed.items[%d]: id and title are required", i)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var envVarRegex = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnvVars replaces ${VAR} references with environment values.
// Unset variables expand to the empty string.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(m []byte) []byte {
		name := strings.TrimSuffix(strings.TrimPrefix(string(m), "${"), "}")
		return []byte(os.Getenv(name))
	})
}
