// Package config loads run settings from an optional YAML/JSON file and
// VOLCANIUM_* environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/volcanium/logger"
	"github.com/katalvlaran/volcanium/network"
)

// EnvPrefix prefixes environment overrides; "__" separates nested keys,
// e.g. VOLCANIUM_SEARCH__SOLO_BUDGET=20.
const EnvPrefix = "VOLCANIUM_"

// Budgets applied when the key is absent from every source. An explicit 0 is
// kept: it is a valid budget that releases nothing.
const (
	DefaultSoloBudget = 30
	DefaultPairBudget = 26
)

// Config is the full run configuration.
type Config struct {
	Network NetworkConfig `json:"network"`
	Search  SearchConfig  `json:"search"`
	Logging logger.Config `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
}

// NetworkConfig controls graph building.
type NetworkConfig struct {
	// Start names the valve both agents start at.
	Start string `json:"start"`
}

// SearchConfig holds the time budgets, in minutes.
type SearchConfig struct {
	// SoloBudget is the budget of a single agent.
	SoloBudget int `json:"solo_budget"`
	// PairBudget is the budget of each of the two cooperating agents.
	PairBudget int `json:"pair_budget"`
}

// MetricsConfig controls metric export.
type MetricsConfig struct {
	// Textfile, when set, receives the metrics in Prometheus text format
	// after every run.
	Textfile string `json:"textfile"`
}

// Load reads path (if non-empty), applies environment overrides, defaults and
// validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("config: unsupported format %q", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	for key, v := range map[string]int{
		"search.solo_budget": DefaultSoloBudget,
		"search.pair_budget": DefaultPairBudget,
	} {
		if k.Exists(key) {
			continue
		}
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("config: default %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults fills empty strings. Budgets are left alone since 0 is valid;
// Load defaults them by key presence.
func (c *Config) SetDefaults() {
	if c.Network.Start == "" {
		c.Network.Start = network.DefaultStart
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Search.SoloBudget < 0 {
		return fmt.Errorf("config: search.solo_budget %d is negative", c.Search.SoloBudget)
	}
	if c.Search.PairBudget < 0 {
		return fmt.Errorf("config: search.pair_budget %d is negative", c.Search.PairBudget)
	}
	if f := c.Logging.Format; f != "json" && f != "console" {
		return fmt.Errorf("config: unknown logging.format %q", f)
	}

	return nil
}
