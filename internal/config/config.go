package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jrojasbu/SW-BALOTO/internal/draw"
)

// Config represents the complete tool configuration
type Config struct {
	Store      *StoreSettings      `hcl:"store,block"`
	Logging    *LoggingSettings    `hcl:"logging,block"`
	Prediction *PredictionSettings `hcl:"prediction,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// StoreSettings locates the history file
type StoreSettings struct {
	Path string `hcl:"path,optional"`
}

// LoggingSettings controls the CLI logger
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// PredictionSettings controls ticket generation
type PredictionSettings struct {
	Seed    *int64 `hcl:"seed,optional"`
	Tickets int    `hcl:"tickets,optional"`
}

// SimulationSettings sets how many draws of each game a simulation adds
type SimulationSettings struct {
	Baloto   int `hcl:"baloto,optional"`
	Revancha int `hcl:"revancha,optional"`
	MiLoto   int `hcl:"miloto,optional"`
}

// OutputSettings controls rendering
type OutputSettings struct {
	Format  string `hcl:"format,optional"`
	NoColor bool   `hcl:"no_color,optional"`
}

const (
	defaultStorePath = "data/history.toml"
	defaultLogLevel  = "info"
	defaultFormat    = "text"
	maxTickets       = 20
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file is not an
// error; the defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store == nil {
		c.Store = &StoreSettings{}
	}
	if c.Store.Path == "" {
		c.Store.Path = defaultStorePath
	}

	if c.Logging == nil {
		c.Logging = &LoggingSettings{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Prediction == nil {
		c.Prediction = &PredictionSettings{}
	}
	if c.Prediction.Tickets == 0 {
		c.Prediction.Tickets = 1
	}

	// an omitted block means the usual month of results
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{Baloto: 8, Revancha: 8, MiLoto: 14}
	}

	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	if c.Prediction.Tickets < 1 || c.Prediction.Tickets > maxTickets {
		return fmt.Errorf("prediction.tickets must be between 1 and %d", maxTickets)
	}

	sim := c.Simulation
	if sim.Baloto < 0 || sim.Revancha < 0 || sim.MiLoto < 0 {
		return fmt.Errorf("simulation counts must not be negative")
	}

	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be text or json; got %q", c.Output.Format)
	}

	return nil
}

// SimulationDraws returns the simulation counts keyed by game
func (c *Config) SimulationDraws() map[draw.Kind]int {
	return map[draw.Kind]int{
		draw.Baloto:   c.Simulation.Baloto,
		draw.Revancha: c.Simulation.Revancha,
		draw.MiLoto:   c.Simulation.MiLoto,
	}
}
