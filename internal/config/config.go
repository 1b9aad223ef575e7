// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"copyshop-pricing/core/grouping"
	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/errors"
	"copyshop-pricing/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "COPYSHOP_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// PriceBook is the default price book file (.hcl or .json)
	PriceBook string `json:"price_book"`

	// GroupingMode is "transitive" or "one-hop"
	GroupingMode string `json:"grouping_mode"`

	// Currency overrides the price book currency when set
	Currency types.Currency `json:"currency,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-line breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			PriceBook:    filepath.Join(homeDir, ".copyshop", "pricebook.hcl"),
			GroupingMode: string(grouping.Transitive),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file; a missing file yields the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config", err)
	}

	return config, nil
}

// ApplyEnv overlays COPYSHOP_* environment variables, reading an optional
// .env file from the working directory first.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string { return s }), nil); err != nil {
		return errors.Config("failed to load environment", err)
	}

	if v := strings.TrimSpace(k.String(EnvPrefix + "PRICEBOOK")); v != "" {
		c.Pricing.PriceBook = v
	}
	if v := strings.TrimSpace(k.String(EnvPrefix + "GROUPING_MODE")); v != "" {
		c.Pricing.GroupingMode = v
	}
	if v := strings.TrimSpace(k.String(EnvPrefix + "CURRENCY")); v != "" {
		c.Pricing.Currency = types.Currency(strings.ToUpper(v))
	}
	if v := strings.TrimSpace(k.String(EnvPrefix + "OUTPUT_FORMAT")); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := strings.TrimSpace(k.String(EnvPrefix + "LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}

	return c.Validate()
}

// Validate checks values that have a fixed set of choices
func (c *Config) Validate() error {
	if _, err := grouping.ParseMode(c.Pricing.GroupingMode); err != nil {
		return errors.Config("invalid grouping mode", err)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json":
	default:
		return errors.Config("invalid output format", fmt.Errorf("%q is not cli or json", c.Output.DefaultFormat))
	}
	return nil
}

// Mode returns the configured grouping mode
func (c *Config) Mode() grouping.Mode {
	mode, err := grouping.ParseMode(c.Pricing.GroupingMode)
	if err != nil {
		return grouping.Transitive
	}
	return mode
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
