// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Latin  []string `json:"latin,omitempty"`  // One or more Latin font paths
	ZhTW   string   `json:"zh_tw,omitempty"`  // Traditional Chinese font path
	ZhCN   string   `json:"zh_cn,omitempty"`  // Simplified Chinese font path
	JA     string   `json:"ja,omitempty"`     // Optional Japanese font path
	Corpus []string `json:"corpus,omitempty"` // Optional UTF-8 corpus text files

	// Output
	Out          string   `json:"out,omitempty"`           // Output font path
	OutName      string   `json:"out_name,omitempty"`      // Output family name
	OutSubfamily string   `json:"out_subfamily,omitempty"` // Output subfamily name
	DropTables   []string `json:"drop_tables,omitempty"`   // Tables to drop from each subset

	// Behavior
	PreferOrder string `json:"prefer_order,omitempty"` // Priority tags, comma-separated; "latin" expands to all Latin inputs
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Block additions
	AddLatin1        bool `json:"add_latin1,omitempty"`
	AddCJKPunct      bool `json:"add_cjk_punct,omitempty"`
	AddJPSyllabaries bool `json:"add_jp_syllabaries,omitempty"`
	AddHalfwidth     bool `json:"add_halfwidth,omitempty"`
	AddHanBasic      bool `json:"add_han_basic,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required-field checks happen after CLI flags are merged in, so a
// config file may legitimately leave inputs unset.
func (c *Config) Validate() error {
	for _, path := range c.Latin {
		if err := checkInput("latin", path); err != nil {
			return err
		}
	}
	if err := checkInput("zh_tw", c.ZhTW); err != nil {
		return err
	}
	if err := checkInput("zh_cn", c.ZhCN); err != nil {
		return err
	}
	if err := checkInput("ja", c.JA); err != nil {
		return err
	}
	for _, path := range c.Corpus {
		if err := checkInput("corpus", path); err != nil {
			return err
		}
	}
	return nil
}

// checkInput verifies that a configured input path exists when set.
func checkInput(field, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config error: %s file not found: %s", field, path)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Latin) == 0 {
		result.Latin = defaults.Latin
	}
	if result.ZhTW == "" {
		result.ZhTW = defaults.ZhTW
	}
	if result.ZhCN == "" {
		result.ZhCN = defaults.ZhCN
	}
	if result.JA == "" {
		result.JA = defaults.JA
	}
	if len(result.Corpus) == 0 {
		result.Corpus = defaults.Corpus
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.OutName == "" {
		result.OutName = defaults.OutName
	}
	if result.OutSubfamily == "" {
		result.OutSubfamily = defaults.OutSubfamily
	}
	if len(result.DropTables) == 0 {
		result.DropTables = defaults.DropTables
	}
	if result.PreferOrder == "" {
		result.PreferOrder = defaults.PreferOrder
	}

	return result
}
