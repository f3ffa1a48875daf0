// Package config provides configuration management for the CLI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"shopcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// CatalogPath is the default pricing catalog file or directory
	CatalogPath string `json:"catalog_path,omitempty"`

	// Pricing contains pricing defaults
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related defaults
type PricingConfig struct {
	// DefaultMethod is the costing method used when an order does not
	// pick one (FULL_STOCK, PERCENTAGE_BASED, HYBRID)
	DefaultMethod string `json:"default_method"`

	// DefaultKerf is the saw kerf allowance in inches
	DefaultKerf float64 `json:"default_kerf"`

	// PricePerLb is the fallback material price per pound when the
	// catalog does not set one
	PricePerLb float64 `json:"price_per_lb"`

	// Currency is the display currency code
	Currency string `json:"currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails includes the per-line audit narrative
	ShowDetails bool `json:"show_details"`

	// ShowCutList includes the shop cut list
	ShowCutList bool `json:"show_cut_list"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".shopcost", "catalog.hcl")

	return &Config{
		Version:     "1.0",
		CatalogPath: catalogPath,
		Pricing: PricingConfig{
			DefaultMethod: "FULL_STOCK",
			DefaultKerf:   0.125,
			Currency:      "USD",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
			ShowCutList:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
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
