package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where init-config writes the defaults file.
const DefaultPath = "ocrlabel.yaml"

// Config represents the ocrlabel.yaml defaults file.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Receipt ReceiptConfig `yaml:"receipt"`
	Output  OutputConfig  `yaml:"output"`
}

// InputConfig controls which files and lines are read.
type InputConfig struct {
	Glob      string `yaml:"glob"`
	SkipEmpty bool   `yaml:"skip_empty"`
}

// ReceiptConfig controls how receipt_source values are produced.
type ReceiptConfig struct {
	Prefix string `yaml:"prefix"`
	Source string `yaml:"source"` // forces one value for every row when set
}

// OutputConfig selects the output encoding.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Load reads an ocrlabel.yaml file from disk. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Glob: "*.txt",
		},
		Receipt: ReceiptConfig{
			Prefix: "receipt_",
		},
		Output: OutputConfig{
			Format: "csv",
		},
	}
}
