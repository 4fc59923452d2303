package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelcards/camel"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "camelcards.hcl"

// Output styles
const (
	StylePlain = "plain"
	StyleTable = "table"
)

// Config represents the complete run configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Input    string        `hcl:"input,optional"`
	Modes    []string      `hcl:"modes,optional"`
	Output   *OutputConfig `hcl:"output,block"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Style   string `hcl:"style,optional"`
	NoColor bool   `hcl:"no_color,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Input:    "-",
		Modes:    []string{camel.Standard.String(), camel.Jokers.String()},
		Output: &OutputConfig{
			Style: StylePlain,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Input == "" {
		c.Input = def.Input
	}
	if len(c.Modes) == 0 {
		c.Modes = def.Modes
	}
	if c.Output == nil {
		c.Output = def.Output
	}
	if c.Output.Style == "" {
		c.Output.Style = def.Output.Style
	}
}

// Validate checks that every value names something we know how to handle
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.RuleModes(); err != nil {
		return err
	}
	if c.Output != nil {
		switch c.Output.Style {
		case StylePlain, StyleTable:
		default:
			return fmt.Errorf("unknown output style %q (want %s or %s)", c.Output.Style, StylePlain, StyleTable)
		}
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// RuleModes returns the configured modes in file order, without duplicates
func (c *Config) RuleModes() ([]camel.Mode, error) {
	seen := make(map[camel.Mode]bool)
	var modes []camel.Mode
	for _, name := range c.Modes {
		mode, err := camel.ParseMode(name)
		if err != nil {
			return nil, fmt.Errorf("invalid modes entry: %w", err)
		}
		if seen[mode] {
			continue
		}
		seen[mode] = true
		modes = append(modes, mode)
	}
	return modes, nil
}
