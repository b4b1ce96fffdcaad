// Package config reads and writes tallybook.yaml, the per-books
// configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tallybook-dev/tallybook/internal/fx"
)

// FileName is the configuration file name inside a books root.
const FileName = "tallybook.yaml"

var validate = validator.New()

// Config represents the top-level tallybook.yaml configuration.
type Config struct {
	Profile      ProfileConfig      `yaml:"profile"`
	BaseCurrency string             `yaml:"base_currency" validate:"required,len=3,alpha"`
	Rates        map[string]float64 `yaml:"rates,omitempty" validate:"omitempty,dive,keys,len=3,alpha,endkeys,gt=0"`
	Git          GitConfig          `yaml:"git"`
}

// ProfileConfig identifies the books owner.
type ProfileConfig struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// GitConfig controls git integration for the books root.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads and validates a tallybook.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for new books.
func Default(profileName, baseCurrency string) *Config {
	return &Config{
		Profile: ProfileConfig{
			ID:   "default",
			Name: profileName,
		},
		BaseCurrency: baseCurrency,
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Tallybook",
			AuthorEmail: "books@tallybook.dev",
		},
	}
}

// ExchangeRates merges the built-in rate table with the config's overrides.
func (c *Config) ExchangeRates() fx.Rates {
	rates := fx.DefaultRates()
	for code, rate := range c.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return rates
}
